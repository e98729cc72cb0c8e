package raster

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene"
)

// Camera is a perspective camera that looks from its world position towards a target point. It embeds a
// skatescene.Node, so it can be parented to something in the scene (to follow a skateboard, for example).
type Camera struct {
	*skatescene.Node
	Target mgl32.Vec3 // The world-space point the Camera looks at
	Up     mgl32.Vec3

	fieldOfView   float32 // Vertical field of view in degrees
	near, far     float32
	width, height int
}

// NewCamera creates a new Camera rendering to a target of the given size in pixels.
func NewCamera(w, h int) *Camera {
	return &Camera{
		Node:        skatescene.NewNode("Camera"),
		Up:          mgl32.Vec3{0, 1, 0},
		fieldOfView: 60,
		near:        0.1,
		far:         200,
		width:       w,
		height:      h,
	}
}

// Resize sets the size of the render target, in pixels.
func (camera *Camera) Resize(w, h int) {
	camera.width = w
	camera.height = h
}

// Size returns the width and height of the render target.
func (camera *Camera) Size() (w, h int) {
	return camera.width, camera.height
}

// AspectRatio returns the camera's aspect ratio (width / height).
func (camera *Camera) AspectRatio() float32 {
	if camera.height == 0 {
		return 1
	}
	return float32(camera.width) / float32(camera.height)
}

// SetFieldOfView sets the vertical field of the view of the camera in degrees.
func (camera *Camera) SetFieldOfView(fovY float32) {
	camera.fieldOfView = fovY
}

// FieldOfView returns the vertical field of view in degrees.
func (camera *Camera) FieldOfView() float32 {
	return camera.fieldOfView
}

// SetClipPlanes sets the near and far planes of the camera.
func (camera *Camera) SetClipPlanes(near, far float32) {
	camera.near = near
	camera.far = far
}

// Near returns the near plane of a camera.
func (camera *Camera) Near() float32 {
	return camera.near
}

// Far returns the far plane of the camera.
func (camera *Camera) Far() float32 {
	return camera.far
}

// ViewMatrix returns the Camera's view matrix.
func (camera *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(camera.WorldPosition(), camera.Target, camera.Up)
}

// Projection returns the Camera's projection matrix.
func (camera *Camera) Projection() mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(camera.fieldOfView), camera.AspectRatio(), camera.near, camera.far)
}

// ViewProjection returns Projection * View.
func (camera *Camera) ViewProjection() mgl32.Mat4 {
	return camera.Projection().Mul4(camera.ViewMatrix())
}

// ClipToScreen maps a clip-space vertex to pixel coordinates, with Z holding the view depth (clip W).
// ok is false if the vertex is behind the near plane.
func (camera *Camera) ClipToScreen(clip mgl32.Vec4) (screen mgl32.Vec3, ok bool) {

	w := clip.W()

	if w < camera.near {
		return mgl32.Vec3{}, false
	}

	width, height := float32(camera.width), float32(camera.height)

	screen = mgl32.Vec3{
		(clip.X()/w + 1) / 2 * width,
		(1 - clip.Y()/w) / 2 * height,
		w,
	}

	return screen, true

}

// WorldToScreen transforms a 3D position in the world to a position onscreen in pixels. The Z coordinate indicates
// depth away from the camera in world units.
func (camera *Camera) WorldToScreen(point mgl32.Vec3) (mgl32.Vec3, bool) {
	return camera.ClipToScreen(camera.ViewProjection().Mul4x1(point.Vec4(1)))
}
