package gltfexport

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/assemblies"
	"github.com/solarlune/skatescene/colors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func findNode(t *testing.T, doc *gltf.Document, name string) (int, *gltf.Node) {
	t.Helper()
	for i, node := range doc.Nodes {
		if node.Name == name {
			return i, node
		}
	}
	require.Failf(t, "node not found", "no node named %q", name)
	return -1, nil
}

func TestExportSkateboard(t *testing.T) {

	rec := skatescene.NewRecorder()
	board := assemblies.NewSkateboard(rec, nil)
	board.SetLocalPosition(10, 0, 0)

	doc, err := Export(board, zaptest.NewLogger(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, doc))

	decoded := new(gltf.Document)
	require.NoError(t, gltf.NewDecoder(&buf).Decode(decoded))

	require.Len(t, decoded.Nodes, 6)
	require.Len(t, decoded.Scenes, 1)
	assert.Len(t, decoded.Scenes[0].Nodes, 1)

	boardIndex, boardNode := findNode(t, decoded, "Skateboard")
	assert.Equal(t, boardIndex, decoded.Scenes[0].Nodes[0])
	assert.Nil(t, boardNode.Mesh)
	assert.InDeltaSlice(t, []float64{10, 0, 0}, boardNode.Matrix[12:15], 1e-5)

	plankIndex, plank := findNode(t, decoded, "Plank")
	assert.Contains(t, boardNode.Children, plankIndex)
	require.NotNil(t, plank.Mesh)
	assert.Len(t, plank.Children, 4)

	wheelIndex, wheel := findNode(t, decoded, "WheelBackLeft")
	assert.Contains(t, plank.Children, wheelIndex)
	assert.InDeltaSlice(t, []float64{-1.5, 0.5, -1.5}, wheel.Matrix[12:15], 1e-5)

	// All four wheels share one mesh; the plank has its own.
	require.NotNil(t, wheel.Mesh)
	assert.Len(t, decoded.Meshes, 2)
	assert.NotEqual(t, *plank.Mesh, *wheel.Mesh)

	require.Len(t, decoded.Materials, 2)
	wood := colors.Wood()
	plankMaterial := decoded.Materials[*decoded.Meshes[*plank.Mesh].Primitives[0].Material]
	assert.InDeltaSlice(t, []float64{float64(wood[0]), float64(wood[1]), float64(wood[2]), 1}, plankMaterial.PBRMetallicRoughness.BaseColorFactor[:], 1e-5)

	primitive := decoded.Meshes[*wheel.Mesh].Primitives[0]
	assert.EqualValues(t, 36, decoded.Accessors[*primitive.Indices].Count)
	assert.EqualValues(t, 24, decoded.Accessors[primitive.Attributes[gltf.POSITION]].Count)

}

func TestExportUnparentedNodesUseWorldTransform(t *testing.T) {

	rec := skatescene.NewRecorder()
	anchor := skatescene.NewNode("Anchor")
	anchor.SetLocalPosition(0, 5, 0)

	group := skatescene.NewGroup("Group")
	model := skatescene.NewModel("Cube", rec.NewCuboid(skatescene.NewBox(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1})))
	group.AddChildren(model)
	model.SetParent(anchor)
	model.SetLocalPosition(1, 0, 0)

	doc, err := Export(group, nil)
	require.NoError(t, err)

	assert.Len(t, doc.Scenes[0].Nodes, 2)
	_, cube := findNode(t, doc, "Cube")
	assert.InDeltaSlice(t, []float64{1, 5, 0}, cube.Matrix[12:15], 1e-5)

}

func TestExportSkipsDestroyedAndShapelessModels(t *testing.T) {

	rec := skatescene.NewRecorder()
	group := skatescene.NewGroup("Group")
	gone := skatescene.NewModel("Gone", rec.NewDrawable("gone"))
	plain := skatescene.NewModel("Plain", rec.NewDrawable("plain"))
	group.AddChildren(gone, plain)
	gone.Destroy()

	doc, err := Export(group, nil)
	require.NoError(t, err)
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "Plain", doc.Nodes[1].Name)
	assert.Nil(t, doc.Nodes[1].Mesh)
	assert.Empty(t, doc.Meshes)

	group.Destroy()
	_, err = Export(group, nil)
	assert.Error(t, err)

	_, err = Export(nil, nil)
	assert.Error(t, err)

}

func TestSave(t *testing.T) {

	rec := skatescene.NewRecorder()
	word := assemblies.NewWord(rec, "BOUD", 5)

	doc, err := Export(word, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "word.glb")
	require.NoError(t, Save(path, doc))

	loaded, err := gltf.Open(path)
	require.NoError(t, err)
	assert.Len(t, loaded.Nodes, len(doc.Nodes))
	assert.Len(t, loaded.Materials, 4)

}
