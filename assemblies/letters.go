package assemblies

import (
	"unicode"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/colors"
)

// GlyphWidth is how wide every glyph is along X; glyphs are centered on X = 0.
const GlyphWidth = 4

// Glyph is a block letter built from flat cuboids, all drawn in one color.
type Glyph struct {
	Color  mgl32.Vec3
	Pieces []Piece
}

func bar(name string, x, y, w, h float32) Piece {
	return Piece{
		Name: name,
		Box:  skatescene.NewBox(mgl32.Vec3{x, y, -0.1}, mgl32.Vec3{w, h, 0.2}),
	}
}

// Glyphs holds the block letters that can be built.
var Glyphs = map[rune]Glyph{
	'B': {
		Color: colors.Gray(0),
		Pieces: []Piece{
			bar("Bottom", -2, 1.2, 4, 0.5),
			bar("Left", -2, 1.2, 0.5, 5),
			bar("BottomRight", 1.5, 1.2, 0.5, 2),
			bar("TopRight", 1.5, 4.2, 0.5, 2),
			bar("Top", -2, 6.2, 4, 0.5),
			bar("Middle", -2, 3.2, 3.5, 1),
		},
	},
	'O': {
		Color: colors.Gray(1.0 / 6),
		Pieces: []Piece{
			bar("Bottom", -2, 1.2, 4, 0.5),
			bar("Left", -2, 1.2, 0.5, 5),
			bar("Right", 1.5, 1.2, 0.5, 5),
			bar("Top", -2, 6.2, 4, 0.5),
		},
	},
	'U': {
		Color: colors.Gray(2.0 / 6),
		Pieces: []Piece{
			bar("Bottom", -2, 1.2, 4, 0.5),
			bar("Left", -2, 1.2, 0.5, 5),
			bar("Right", 1.5, 1.2, 0.5, 5),
		},
	},
	'D': {
		Color: colors.Gray(3.0 / 6),
		Pieces: []Piece{
			bar("Bottom", -2, 1.2, 3.5, 0.5),
			bar("Left", -2, 1.2, 0.5, 5.5),
			bar("Right", 1.5, 1.7, 0.5, 4.5),
			bar("Top", -2, 6.2, 3.5, 0.5),
		},
	},
}

// NewGlyph builds the block letter for the given rune (case-insensitive). It returns nil if there's no such glyph.
func NewGlyph(factory skatescene.CuboidFactory, letter rune) *skatescene.Group {

	letter = unicode.ToUpper(letter)

	glyph, ok := Glyphs[letter]
	if !ok {
		return nil
	}

	group := skatescene.NewGroup("Glyph" + string(letter))
	group.SetUntextured(true)

	for _, piece := range glyph.Pieces {
		model := piece.build(factory)
		group.AddChildren(model)
		group.Tint(glyph.Color, model)
	}

	return group

}

// NewWord lays out the glyphs for text left to right, spacing units apart, centered on X = 0. Characters
// without a glyph (spaces included) leave a gap.
func NewWord(factory skatescene.CuboidFactory, text string, spacing float32) *skatescene.Group {

	word := skatescene.NewGroup("Word")

	letters := []rune(text)
	start := -float32(len(letters)-1) * spacing / 2

	for i, letter := range letters {
		glyph := NewGlyph(factory, letter)
		if glyph == nil {
			continue
		}
		glyph.SetLocalPosition(start+float32(i)*spacing, 0, 0)
		word.AddChildren(glyph)
	}

	return word

}
