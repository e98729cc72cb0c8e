package raster

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene"
)

// Vertex is one screen-space corner of a Triangle. Position holds pixel coordinates in X and Y and the view
// depth in Z.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
}

// Triangle is a shaded, projected triangle ready to be drawn onscreen.
type Triangle struct {
	Vertices [3]Vertex
	Color    mgl32.Vec3         // Flat color after lighting
	Textured bool               // Whether Texture should be sampled and multiplied by Color
	Texture  skatescene.Texture // Texture bound to the sampled unit when drawn
	Depth    float32            // Average view depth of the three vertices
}

// Frame is a skatescene.Context that records the uniforms written to it and, for each cuboid drawn, projects
// and shades its triangles through a Camera. The resulting Triangles come out sorted back-to-front so a
// backend without a depth buffer can paint them in order.
type Frame struct {
	Camera *Camera

	// LightDirection is the direction light travels in, in world space.
	LightDirection mgl32.Vec3
	// Ambient is the light level faces pointing away from the light receive, from 0 to 1.
	Ambient float32

	model          mgl32.Mat4
	color          mgl32.Vec3
	textureMap     int32
	texturePresent bool
	units          map[int]skatescene.Texture

	viewProjection mgl32.Mat4
	triangles      []Triangle
	bucket         *sortingTriangleBucket
	sorted         []Triangle
	drawCalls      int
}

// NewFrame returns a Frame that renders through the given Camera.
func NewFrame(camera *Camera) *Frame {
	return &Frame{
		Camera:         camera,
		LightDirection: mgl32.Vec3{-0.3, -1, -0.5}.Normalize(),
		Ambient:        0.35,
		model:          mgl32.Ident4(),
		color:          mgl32.Vec3{1, 1, 1},
		units:          map[int]skatescene.Texture{},
		bucket:         newSortingTriangleBucket(512),
	}
}

// Begin clears the triangles from the previous frame and captures the Camera's current view. Uniforms keep
// their values across frames, like a shader program's would.
func (frame *Frame) Begin() {
	frame.triangles = frame.triangles[:0]
	frame.sorted = nil
	frame.drawCalls = 0
	frame.bucket.Clear()
	frame.viewProjection = frame.Camera.ViewProjection()
}

func (frame *Frame) SetMat4(uniform skatescene.Uniform, value mgl32.Mat4) {
	if uniform == skatescene.UniformModel {
		frame.model = value
	}
}

func (frame *Frame) SetVec3(uniform skatescene.Uniform, value mgl32.Vec3) {
	if uniform == skatescene.UniformColor {
		frame.color = value
	}
}

func (frame *Frame) SetInt(uniform skatescene.Uniform, value int32) {
	switch uniform {
	case skatescene.UniformTextureMap:
		frame.textureMap = value
	case skatescene.UniformTexturePresent:
		frame.texturePresent = value != 0
	}
}

func (frame *Frame) BindTexture(unit int, texture skatescene.Texture) {
	frame.units[unit] = texture
}

// DrawCalls returns how many Drawables were drawn since Begin.
func (frame *Frame) DrawCalls() int {
	return frame.drawCalls
}

// Triangles returns the visible triangles drawn since Begin, farthest first.
func (frame *Frame) Triangles() []Triangle {

	if frame.sorted != nil {
		return frame.sorted
	}

	frame.bucket.Clear()
	for i, tri := range frame.triangles {
		frame.bucket.AddTriangle(i, tri.Depth)
	}
	frame.bucket.Sort()

	frame.sorted = make([]Triangle, 0, len(frame.triangles))
	frame.bucket.ForEach(func(triIndex, triID int) {
		frame.sorted = append(frame.sorted, frame.triangles[triID])
	})

	return frame.sorted

}

// NewCuboid returns a Drawable for the given Box that rasterizes into this Frame.
func (frame *Frame) NewCuboid(box skatescene.Box) skatescene.Drawable {
	return &cuboid{
		frame:    frame,
		box:      box,
		vertices: box.Vertices(),
	}
}

// cuboid is the Frame's Drawable for a Box.
type cuboid struct {
	frame    *Frame
	box      skatescene.Box
	vertices []skatescene.BoxVertex
	disposed bool
}

func (c *cuboid) Box() skatescene.Box {
	return c.box
}

func (c *cuboid) Dispose() {
	c.disposed = true
	c.vertices = nil
}

func (c *cuboid) Draw() {

	if c.disposed {
		return
	}

	frame := c.frame
	frame.drawCalls++
	frame.sorted = nil

	mvp := frame.viewProjection.Mul4(frame.model)
	normalMatrix := frame.model.Mat3().Inv().Transpose()
	toLight := frame.LightDirection.Mul(-1)

	texture := skatescene.Texture(0)
	if frame.texturePresent {
		texture = frame.units[int(frame.textureMap)]
	}

	screen := make([]Vertex, len(c.vertices))
	visible := make([]bool, len(c.vertices))

	for i, v := range c.vertices {
		screen[i].UV = v.UV
		screen[i].Position, visible[i] = frame.Camera.ClipToScreen(mvp.Mul4x1(v.Position.Vec4(1)))
	}

	for i := 0; i < len(skatescene.BoxIndices); i += 3 {

		a, b, cc := skatescene.BoxIndices[i], skatescene.BoxIndices[i+1], skatescene.BoxIndices[i+2]

		if !visible[a] || !visible[b] || !visible[cc] {
			continue
		}

		p0, p1, p2 := screen[a].Position, screen[b].Position, screen[cc].Position

		// A transform carrying NaN or Inf leaves nothing that can be placed onscreen.
		if !finiteVec(p0) || !finiteVec(p1) || !finiteVec(p2) {
			continue
		}

		// Screen Y points down, so faces wound counter-clockwise in the world come out clockwise here.
		area := (p1.X()-p0.X())*(p2.Y()-p0.Y()) - (p1.Y()-p0.Y())*(p2.X()-p0.X())
		if area >= 0 {
			continue
		}

		normal := normalMatrix.Mul3x1(c.vertices[a].Normal).Normalize()
		light := frame.Ambient + (1-frame.Ambient)*max32(0, normal.Dot(toLight))

		frame.triangles = append(frame.triangles, Triangle{
			Vertices: [3]Vertex{screen[a], screen[b], screen[cc]},
			Color:    frame.color.Mul(light),
			Textured: frame.texturePresent,
			Texture:  texture,
			Depth:    (p0.Z() + p1.Z() + p2.Z()) / 3,
		})

	}

}

func finiteVec(v mgl32.Vec3) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
