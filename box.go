package skatescene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Box describes an axis-aligned cuboid by its minimum corner and its extent along each axis.
type Box struct {
	Corner mgl32.Vec3
	Extent mgl32.Vec3
}

// NewBox returns a Box with the given corner and extent.
func NewBox(corner, extent mgl32.Vec3) Box {
	return Box{Corner: corner, Extent: extent}
}

// Min returns the corner of the Box with the smallest coordinates.
func (box Box) Min() mgl32.Vec3 {
	return box.Corner
}

// Max returns the corner of the Box opposite to Min.
func (box Box) Max() mgl32.Vec3 {
	return box.Corner.Add(box.Extent)
}

// Center returns the center point inbetween the two corners of the Box.
func (box Box) Center() mgl32.Vec3 {
	return box.Corner.Add(box.Extent.Mul(0.5))
}

func (box Box) String() string {
	return fmt.Sprintf("box{corner: %v, extent: %v}", box.Corner, box.Extent)
}

// BoxVertex is a single corner of one face of a Box.
type BoxVertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	UV       mgl32.Vec2
}

// boxFaces lists, for each face, its outward normal and the four corners (as 0/1 picks of min/max per axis),
// counter-clockwise when looking at the face from outside.
var boxFaces = [6]struct {
	normal  mgl32.Vec3
	corners [4][3]int
}{
	{mgl32.Vec3{1, 0, 0}, [4][3]int{{1, 0, 1}, {1, 0, 0}, {1, 1, 0}, {1, 1, 1}}},  // Right
	{mgl32.Vec3{-1, 0, 0}, [4][3]int{{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}}}, // Left
	{mgl32.Vec3{0, 1, 0}, [4][3]int{{0, 1, 1}, {1, 1, 1}, {1, 1, 0}, {0, 1, 0}}},  // Top
	{mgl32.Vec3{0, -1, 0}, [4][3]int{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}}}, // Bottom
	{mgl32.Vec3{0, 0, 1}, [4][3]int{{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}}},  // Front
	{mgl32.Vec3{0, 0, -1}, [4][3]int{{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}}}, // Back
}

var boxFaceUVs = [4]mgl32.Vec2{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// BoxIndices indexes into the result of Box.Vertices to form the Box's 12 triangles, two per face.
var BoxIndices = func() []uint16 {
	indices := make([]uint16, 0, 36)
	for face := 0; face < 6; face++ {
		i := uint16(face * 4)
		indices = append(indices, i, i+1, i+2, i, i+2, i+3)
	}
	return indices
}()

// Vertices returns the 24 vertices (four per face, so each face has its own normal) of the Box.
func (box Box) Vertices() []BoxVertex {

	min, max := box.Min(), box.Max()
	pick := [2]mgl32.Vec3{min, max}

	vertices := make([]BoxVertex, 0, 24)

	for _, face := range boxFaces {
		for i, c := range face.corners {
			vertices = append(vertices, BoxVertex{
				Position: mgl32.Vec3{pick[c[0]].X(), pick[c[1]].Y(), pick[c[2]].Z()},
				Normal:   face.normal,
				UV:       boxFaceUVs[i],
			})
		}
	}

	return vertices

}
