package skatescene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDrawable counts draws and disposals, so tests can check nothing is drawn or freed twice.
type countingDrawable struct {
	draws    int
	disposed int
}

func (d *countingDrawable) Draw()    { d.draws++ }
func (d *countingDrawable) Dispose() { d.disposed++ }

func TestGroupRendersChildrenInOrderWithColors(t *testing.T) {

	rec := NewRecorder()

	red := mgl32.Vec3{1, 0, 0}
	blue := mgl32.Vec3{0, 0, 1}

	group := NewGroup("group")
	first := NewModel("first", rec.NewDrawable("first"))
	second := NewModel("second", rec.NewDrawable("second"))
	third := NewModel("third", rec.NewDrawable("third"))
	group.AddChildren(first, second, third)
	group.Tint(red, first)
	group.Tint(blue, second)

	group.Render(rec)

	draws := rec.Draws()
	require.Len(t, draws, 3)
	assert.Equal(t, "first", draws[0].Label)
	assert.Equal(t, red, draws[0].Vec3)
	assert.Equal(t, "second", draws[1].Label)
	assert.Equal(t, blue, draws[1].Vec3)
	// Untinted children see whatever color was written last.
	assert.Equal(t, "third", draws[2].Label)
	assert.Equal(t, blue, draws[2].Vec3)

	assert.Equal(t, 2, rec.Count(OpSetVec3))

}

func TestGroupUntexturedClearsTexturePresent(t *testing.T) {
	rec := NewRecorder()
	group := NewGroup("glyph")
	group.SetUntextured(true)
	group.Render(rec)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, Call{Op: OpSetInt, Uniform: UniformTexturePresent, Int: 0}, rec.Calls[0])
}

func TestAddChildrenParentsAndOwns(t *testing.T) {
	group := NewGroup("group")
	child := NewNode("child")
	group.AddChildren(child)

	assert.Equal(t, INode(group), child.Parent())
	assert.Equal(t, []INode{child}, group.Children())
}

func TestAddChildrenTransfersOwnership(t *testing.T) {
	board := NewGroup("board")
	character := NewGroup("character")
	body := &countingDrawable{}
	character.AddChildren(NewModel("body", body))

	spare := NewGroup("spare")
	spare.AddChildren(character)
	board.AddChildren(character)

	assert.Empty(t, spare.Children())
	assert.Equal(t, []INode{character}, board.Children())
	assert.Equal(t, INode(board), character.Parent())

	spare.Destroy()
	assert.False(t, character.Destroyed())
	assert.Zero(t, body.disposed)

	board.Destroy()
	assert.True(t, character.Destroyed())
	assert.Equal(t, 1, body.disposed)
}

func TestRemoveChildren(t *testing.T) {
	group := NewGroup("group")
	kept := NewNode("kept")
	removed := NewNode("removed")
	group.AddChildren(kept, removed)

	other := NewGroup("other")
	stranger := NewNode("stranger")
	other.AddChildren(stranger)

	group.RemoveChildren(removed, stranger)

	assert.Equal(t, []INode{kept}, group.Children())
	assert.Nil(t, removed.Parent())
	assert.Equal(t, INode(other), stranger.Parent())

	group.Destroy()
	assert.False(t, removed.Destroyed())
}

func TestSetParentKeepsOwnership(t *testing.T) {
	board := NewGroup("board")
	plank := NewModel("plank", &countingDrawable{})
	wheel := NewModel("wheel", &countingDrawable{})
	board.AddChildren(plank, wheel)
	wheel.SetParent(plank)

	assert.Equal(t, []INode{plank, wheel}, board.Children())
	assert.Nil(t, plank.Children())
}

func TestDestroyReleasesEveryDescendantOnce(t *testing.T) {

	drawables := []*countingDrawable{}
	newModel := func(name string) *Model {
		d := &countingDrawable{}
		drawables = append(drawables, d)
		return NewModel(name, d)
	}

	root := NewGroup("root")
	plank := newModel("plank")
	root.AddChildren(plank)
	for i := 0; i < 4; i++ {
		wheel := newModel("wheel")
		root.AddChildren(wheel)
		wheel.SetParent(plank)
	}

	rider := NewGroup("rider")
	rider.AddChildren(newModel("legs"), newModel("torso"))
	inner := NewGroup("inner")
	inner.AddChildren(newModel("head"))
	rider.AddChildren(inner)
	root.AddChildren(rider)

	root.Destroy()
	root.Destroy()
	rider.Destroy()
	plank.Destroy()

	require.Len(t, drawables, 8)
	for i, d := range drawables {
		assert.Equal(t, 1, d.disposed, "drawable #%d", i)
	}

	assert.True(t, inner.Destroyed())
	assert.Empty(t, root.Children())

	// Nothing is drawn once destroyed.
	root.Render(NewRecorder())
	for _, d := range drawables {
		assert.Zero(t, d.draws)
	}

}

func TestDestroyingChildDetachesItFromOwner(t *testing.T) {
	group := NewGroup("group")
	d := &countingDrawable{}
	model := NewModel("model", d)
	group.AddChildren(model, NewNode("other"))

	model.Destroy()
	assert.Len(t, group.Children(), 1)

	group.Destroy()
	assert.Equal(t, 1, d.disposed)
}

func TestRemoveChildrenClearsVacatedSlot(t *testing.T) {
	group := NewGroup("group")
	first, middle, last := NewNode("first"), NewNode("middle"), NewNode("last")
	group.AddChildren(first, middle, last)

	group.RemoveChildren(middle)

	assert.Equal(t, []INode{first, last}, group.Children())
	// The slot past the new end mustn't keep the moved Node reachable.
	assert.Equal(t, part{}, group.parts[:3][2])
}

func TestDestroyedParentStillResolves(t *testing.T) {
	board := NewGroup("board")
	board.SetLocalPosition(3, 0, 0)
	follower := NewNode("follower")
	follower.SetParent(board)

	board.Destroy()
	assertVec3(t, mgl32.Vec3{3, 0, 0}, follower.WorldPosition())
}
