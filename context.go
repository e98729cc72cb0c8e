package skatescene

import "github.com/go-gl/mathgl/mgl32"

// Uniform names a shader input slot that a Node writes to while rendering. The string values match the names
// used by the default shader program, so a GL-backed Context can look them up directly.
type Uniform string

const (
	UniformModel          Uniform = "umModel"         // mat4: world transform of the Model being drawn
	UniformColor          Uniform = "uColor"          // vec3: flat object color
	UniformTextureMap     Uniform = "uTexture"        // int: texture unit to sample from
	UniformTexturePresent Uniform = "uTexturePresent" // int: 1 if the object is textured, 0 otherwise
)

// Texture is an opaque handle to a texture owned by the rendering backend. Zero means "no texture".
type Texture uint32

// Context is the rendering state a Node writes into when it renders. It stands in for the active shader program
// and texture bindings of a graphics pipeline; Nodes never read it back. Implementations are free to ignore
// uniforms they don't know about.
type Context interface {
	SetMat4(uniform Uniform, value mgl32.Mat4)
	SetVec3(uniform Uniform, value mgl32.Vec3)
	SetInt(uniform Uniform, value int32)
	BindTexture(unit int, texture Texture)
}

// Drawable is an opaque piece of geometry that issues a single draw call against whatever state was last
// written into the Context it was created from.
type Drawable interface {
	Draw()
}

// Disposer is implemented by Drawables that hold resources which should be released when the Model owning
// them is destroyed.
type Disposer interface {
	Dispose()
}

// BoxShaped is implemented by Drawables that were built from a Box, so that exporters can recover their geometry.
type BoxShaped interface {
	Box() Box
}

// CuboidFactory creates cuboid Drawables for a particular rendering backend.
type CuboidFactory interface {
	NewCuboid(box Box) Drawable
}
