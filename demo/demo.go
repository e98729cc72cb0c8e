// Package demo puts together the scene the command line tool shows: a word spelled out in block letters and
// a skateboard rolling back and forth in front of it, optionally carrying a letter as a rider.
package demo

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/assemblies"
	"github.com/solarlune/skatescene/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// wheelRadius is half the wheel cube's extent; rolling one radius turns a wheel by one radian.
const wheelRadius = 0.5

// Scene is the demo scene. Root owns everything, so rendering or destroying Root covers the whole scene.
type Scene struct {
	Root  *skatescene.Group
	Word  *skatescene.Group
	Board *assemblies.Skateboard

	start    mgl32.Vec3
	distance float32
	seconds  float32
	ride     *gween.Tween
	forward  bool
	offset   float32
}

// Build assembles the scene from its settings, creating cuboids with factory. If plankTexture isn't zero and
// the settings ask for it, the plank is textured with it.
func Build(cfg config.Scene, factory skatescene.CuboidFactory, plankTexture skatescene.Texture) *Scene {

	scene := &Scene{
		Root:     skatescene.NewGroup("Scene"),
		start:    cfg.BoardPosition,
		distance: cfg.RideDistance,
		seconds:  cfg.RideSeconds,
		forward:  true,
	}

	scene.Word = assemblies.NewWord(factory, cfg.Word, cfg.WordSpacing)
	scene.Word.SetLocalPositionVec(cfg.WordPosition)

	var rider skatescene.INode
	for _, letter := range cfg.Rider {
		if glyph := assemblies.NewGlyph(factory, letter); glyph != nil {
			rider = glyph
		}
	}

	scene.Board = assemblies.NewSkateboard(factory, rider)
	scene.Board.Tint(cfg.PlankColor.Vec3(), scene.Board.Plank)
	for _, wheel := range scene.Board.Wheels {
		scene.Board.Tint(cfg.WheelColor.Vec3(), wheel)
	}
	if cfg.Checker && plankTexture != 0 {
		scene.Board.Plank.SetTexture(plankTexture)
	}
	scene.Board.SetLocalPositionVec(cfg.BoardPosition)

	scene.Root.AddChildren(scene.Word, scene.Board)

	scene.newLeg()

	return scene

}

func (scene *Scene) newLeg() {
	from, to := float32(0), scene.distance
	if !scene.forward {
		from, to = to, from
	}
	scene.ride = gween.New(from, to, scene.seconds, ease.InOutQuad)
}

// Update advances the ride by dt seconds. The board eases from its start to RideDistance along X and back,
// and the wheels turn to match the distance covered.
func (scene *Scene) Update(dt float32) {

	offset, finished := scene.ride.Update(dt)
	scene.SetRideOffset(offset)

	if finished {
		scene.forward = !scene.forward
		scene.newLeg()
	}

}

// SetRideOffset places the board offset units along X from where it started.
func (scene *Scene) SetRideOffset(offset float32) {
	scene.offset = offset
	scene.Board.SetLocalPositionVec(scene.start.Add(mgl32.Vec3{offset, 0, 0}))
	for _, wheel := range scene.Board.Wheels {
		wheel.SetLocalAngles(0, 0, -offset/wheelRadius)
	}
}

// RideOffset returns how far along X the board currently is from its start.
func (scene *Scene) RideOffset() float32 {
	return scene.offset
}

// Forward returns whether the board is on its way out (rather than back).
func (scene *Scene) Forward() bool {
	return scene.forward
}

// Destroy releases everything in the scene.
func (scene *Scene) Destroy() {
	scene.Root.Destroy()
}
