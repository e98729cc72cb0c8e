package skatescene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Op identifies the kind of call a Recorder saw.
type Op int

const (
	OpSetMat4 Op = iota
	OpSetVec3
	OpSetInt
	OpBindTexture
	OpDraw
	OpDispose
)

func (op Op) String() string {
	switch op {
	case OpSetMat4:
		return "set-mat4"
	case OpSetVec3:
		return "set-vec3"
	case OpSetInt:
		return "set-int"
	case OpBindTexture:
		return "bind-texture"
	case OpDraw:
		return "draw"
	case OpDispose:
		return "dispose"
	default:
		return "unknown"
	}
}

// Call is a single recorded call. Only the fields relevant to Op are set, except for draws, which also capture
// the model matrix, color, and texture state in effect at the time of the draw.
type Call struct {
	Op       Op
	Uniform  Uniform
	Mat4     mgl32.Mat4
	Vec3     mgl32.Vec3
	Int      int32
	Unit     int
	Texture  Texture
	Textured bool
	Label    string // For draws and disposals, the label of the Drawable involved
}

// Recorder is a Context that keeps a log of everything written into it, along with the resulting uniform state.
// It's handy for tests and for tracing a render pass without a graphics backend.
type Recorder struct {
	Calls []Call

	model          mgl32.Mat4
	color          mgl32.Vec3
	texturePresent int32
	textureMap     int32
	units          map[int]Texture
	cuboids        int
}

// NewRecorder returns a new, empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		model: mgl32.Ident4(),
		units: map[int]Texture{},
	}
}

func (r *Recorder) SetMat4(uniform Uniform, value mgl32.Mat4) {
	if uniform == UniformModel {
		r.model = value
	}
	r.Calls = append(r.Calls, Call{Op: OpSetMat4, Uniform: uniform, Mat4: value})
}

func (r *Recorder) SetVec3(uniform Uniform, value mgl32.Vec3) {
	if uniform == UniformColor {
		r.color = value
	}
	r.Calls = append(r.Calls, Call{Op: OpSetVec3, Uniform: uniform, Vec3: value})
}

func (r *Recorder) SetInt(uniform Uniform, value int32) {
	switch uniform {
	case UniformTexturePresent:
		r.texturePresent = value
	case UniformTextureMap:
		r.textureMap = value
	}
	r.Calls = append(r.Calls, Call{Op: OpSetInt, Uniform: uniform, Int: value})
}

func (r *Recorder) BindTexture(unit int, texture Texture) {
	r.units[unit] = texture
	r.Calls = append(r.Calls, Call{Op: OpBindTexture, Unit: unit, Texture: texture})
}

// Draws returns only the draw calls recorded so far.
func (r *Recorder) Draws() []Call {
	draws := []Call{}
	for _, c := range r.Calls {
		if c.Op == OpDraw {
			draws = append(draws, c)
		}
	}
	return draws
}

// Count returns how many calls of the given Op were recorded.
func (r *Recorder) Count(op Op) int {
	count := 0
	for _, c := range r.Calls {
		if c.Op == op {
			count++
		}
	}
	return count
}

// Reset clears the recorded calls; the uniform state is kept, as it would be in a real pipeline.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// String returns the recorded calls, one per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, c := range r.Calls {
		sb.WriteString(c.Op.String())
		switch c.Op {
		case OpSetMat4:
			p := c.Mat4.Col(3)
			fmt.Fprintf(&sb, " %s translation=(%.2f, %.2f, %.2f)", c.Uniform, p.X(), p.Y(), p.Z())
		case OpSetVec3:
			fmt.Fprintf(&sb, " %s (%.3f, %.3f, %.3f)", c.Uniform, c.Vec3.X(), c.Vec3.Y(), c.Vec3.Z())
		case OpSetInt:
			fmt.Fprintf(&sb, " %s %d", c.Uniform, c.Int)
		case OpBindTexture:
			fmt.Fprintf(&sb, " unit=%d texture=%d", c.Unit, c.Texture)
		case OpDraw, OpDispose:
			fmt.Fprintf(&sb, " %s", c.Label)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewDrawable returns a Drawable that records a draw (and later a disposal) against the Recorder under the given label.
func (r *Recorder) NewDrawable(label string) Drawable {
	return &recordedDrawable{recorder: r, label: label}
}

// NewCuboid returns a recording Drawable for the given Box, labeled in creation order.
func (r *Recorder) NewCuboid(box Box) Drawable {
	r.cuboids++
	return &recordedCuboid{
		recordedDrawable: &recordedDrawable{recorder: r, label: fmt.Sprintf("cuboid#%d", r.cuboids)},
		box:              box,
	}
}

type recordedDrawable struct {
	recorder *Recorder
	label    string
}

func (d *recordedDrawable) Draw() {
	r := d.recorder
	call := Call{
		Op:       OpDraw,
		Mat4:     r.model,
		Vec3:     r.color,
		Textured: r.texturePresent != 0,
		Label:    d.label,
	}
	if call.Textured {
		call.Texture = r.units[int(r.textureMap)]
	}
	r.Calls = append(r.Calls, call)
}

func (d *recordedDrawable) Dispose() {
	d.recorder.Calls = append(d.recorder.Calls, Call{Op: OpDispose, Label: d.label})
}

type recordedCuboid struct {
	*recordedDrawable
	box Box
}

func (d *recordedCuboid) Box() Box {
	return d.box
}
