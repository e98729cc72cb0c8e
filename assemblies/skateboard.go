package assemblies

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/colors"
)

// Piece is one cuboid of an assembly: its geometry in the piece's own space and where it sits relative to its parent.
type Piece struct {
	Name   string
	Box    skatescene.Box
	Offset mgl32.Vec3
}

// build creates the Model for a Piece.
func (p Piece) build(factory skatescene.CuboidFactory) *skatescene.Model {
	model := skatescene.NewModel(p.Name, factory.NewCuboid(p.Box))
	model.SetLocalPositionVec(p.Offset)
	return model
}

var (
	plankPiece = Piece{
		Name: "Plank",
		Box:  skatescene.NewBox(mgl32.Vec3{-4, 1, -2}, mgl32.Vec3{8, 0.2, 4}),
	}

	wheelBox = skatescene.NewBox(mgl32.Vec3{-0.5, -0.5, -0.5}, mgl32.Vec3{1, 1, 1})

	// Wheels are positioned relative to the plank.
	wheelPieces = [4]Piece{
		{Name: "WheelBackLeft", Box: wheelBox, Offset: mgl32.Vec3{-1.5, 0.5, -1.5}},
		{Name: "WheelBackRight", Box: wheelBox, Offset: mgl32.Vec3{-1.5, 0.5, 1.5}},
		{Name: "WheelFrontLeft", Box: wheelBox, Offset: mgl32.Vec3{1.5, 0.5, -1.5}},
		{Name: "WheelFrontRight", Box: wheelBox, Offset: mgl32.Vec3{1.5, 0.5, 1.5}},
	}
)

// Skateboard is a plank on four wheels, optionally carrying a rider. The board owns (and so renders and destroys)
// the plank, the wheels, and the rider; the wheels are parented to the plank so they follow it if it tilts.
type Skateboard struct {
	*skatescene.Group
	Plank  *skatescene.Model
	Wheels [4]*skatescene.Model
	rider  skatescene.INode
}

// NewSkateboard builds a Skateboard out of cuboids from the given factory. rider may be nil.
func NewSkateboard(factory skatescene.CuboidFactory, rider skatescene.INode) *Skateboard {

	board := &Skateboard{
		Group: skatescene.NewGroup("Skateboard"),
	}

	board.Plank = plankPiece.build(factory)
	board.AddChildren(board.Plank)
	board.Tint(colors.Wood(), board.Plank)

	for i, piece := range wheelPieces {
		wheel := piece.build(factory)
		board.AddChildren(wheel)
		board.Tint(colors.Black(), wheel)
		wheel.SetParent(board.Plank)
		board.Wheels[i] = wheel
	}

	board.SetRider(rider)

	return board

}

// Rider returns the subtree riding the board, or nil. A rider destroyed while on the board no longer counts.
func (board *Skateboard) Rider() skatescene.INode {
	if board.rider != nil && board.rider.Destroyed() {
		board.rider = nil
	}
	return board.rider
}

// SetRider attaches a subtree to the board, taking ownership of it. A previous rider is handed back unparented
// (not destroyed). The rider renders last and writes no color of its own, so it keeps the wheels' black unless
// it tints its own parts.
func (board *Skateboard) SetRider(rider skatescene.INode) {
	if board.Rider() != nil {
		board.RemoveChildren(board.rider)
	}
	board.rider = rider
	if rider != nil {
		board.AddChildren(rider)
	}
}
