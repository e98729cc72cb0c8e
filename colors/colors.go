package colors

// package colors contains functions to quickly generate the RGB vectors written to the color uniform, by name
// (i.e. "White()", "Black()", "Wood()", etc), or from any image/color.Color.

import (
	"image/color"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

// White returns the color of the provided name.
func White() mgl32.Vec3 {
	return mgl32.Vec3{1, 1, 1}
}

// Black returns the color of the provided name.
func Black() mgl32.Vec3 {
	return mgl32.Vec3{0, 0, 0}
}

// Gray returns a neutral gray of the given brightness, from 0 (black) to 1 (white).
func Gray(level float32) mgl32.Vec3 {
	return mgl32.Vec3{level, level, level}
}

// Wood returns the light brown used for skateboard planks.
func Wood() mgl32.Vec3 {
	return RGB8(193, 154, 107)
}

// RGB8 returns a color from 8-bit channel values.
func RGB8(r, g, b uint8) mgl32.Vec3 {
	return mgl32.Vec3{float32(r) / 255, float32(g) / 255, float32(b) / 255}
}

// FromColor converts any color.Color into an RGB vector, dropping alpha.
func FromColor(c color.Color) mgl32.Vec3 {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB8(nrgba.R, nrgba.G, nrgba.B)
}

// ToColor converts an RGB vector into an opaque color.NRGBA, clamping each channel to [0, 1].
func ToColor(v mgl32.Vec3) color.NRGBA {
	channel := func(f float32) uint8 {
		return uint8(mgl32.Clamp(f, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{channel(v.X()), channel(v.Y()), channel(v.Z()), 255}
}

// Named looks up an SVG 1.1 color name ("tan", "saddlebrown", ...), ignoring case and spaces.
func Named(name string) (mgl32.Vec3, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	c, ok := colornames.Map[key]
	if !ok {
		return mgl32.Vec3{}, false
	}
	return FromColor(c), true
}
