package skatescene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoxCorners(t *testing.T) {
	plank := NewBox(mgl32.Vec3{-4, 1, -2}, mgl32.Vec3{8, 0.2, 4})
	assertVec3(t, mgl32.Vec3{-4, 1, -2}, plank.Min())
	assertVec3(t, mgl32.Vec3{4, 1.2, 2}, plank.Max())
	assertVec3(t, mgl32.Vec3{0, 1.1, 0}, plank.Center())
}

func TestBoxFacesWindOutwards(t *testing.T) {

	box := NewBox(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{1, 2, 3})
	vertices := box.Vertices()

	require.Len(t, vertices, 24)
	require.Len(t, BoxIndices, 36)

	for i := 0; i < len(BoxIndices); i += 3 {

		a := vertices[BoxIndices[i]]
		b := vertices[BoxIndices[i+1]]
		c := vertices[BoxIndices[i+2]]

		facing := b.Position.Sub(a.Position).Cross(c.Position.Sub(a.Position))
		assert.Greater(t, facing.Dot(a.Normal), float32(0), "triangle %d winds inwards", i/3)

		// Every vertex of a face sits on the face's plane, on the outer side of the center.
		assert.Greater(t, a.Position.Sub(box.Center()).Dot(a.Normal), float32(0))

	}

}
