// Package ebitenrender paints the triangles a raster.Frame produces onto an Ebitengine image.
package ebitenrender

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/skatescene"
	"github.com/solarlune/skatescene/raster"
	"go.uber.org/zap"
)

// maxBatchVertices keeps each DrawTriangles batch addressable by uint16 indices.
const maxBatchVertices = 3 * 20000

// Renderer owns the textures that Nodes refer to by handle and draws a Frame's triangles onto the screen.
type Renderer struct {
	Frame *raster.Frame

	textures    map[skatescene.Texture]*ebiten.Image
	nextTexture skatescene.Texture
	missing     map[skatescene.Texture]bool
	defaultImg  *ebiten.Image
	logger      *zap.Logger

	vertexList []ebiten.Vertex
	indexList  []uint16

	DrawnTris int // Triangles drawn by the last call to Present
}

// New creates a Renderer for the given Frame.
func New(frame *raster.Frame, logger *zap.Logger) *Renderer {

	defaultImg := ebiten.NewImage(4, 4)
	defaultImg.Fill(color.White)

	return &Renderer{
		Frame:       frame,
		textures:    map[skatescene.Texture]*ebiten.Image{},
		nextTexture: 1,
		missing:     map[skatescene.Texture]bool{},
		defaultImg:  defaultImg,
		logger:      logger,
		vertexList:  make([]ebiten.Vertex, 0, maxBatchVertices),
		indexList:   make([]uint16, 0, maxBatchVertices),
	}

}

// AddTexture uploads an image and returns the handle Nodes should use to refer to it.
func (r *Renderer) AddTexture(img image.Image) skatescene.Texture {
	handle := r.nextTexture
	r.nextTexture++
	r.textures[handle] = ebiten.NewImageFromImage(img)
	r.logger.Debug("texture added", zap.Uint32("handle", uint32(handle)), zap.Stringer("bounds", img.Bounds()))
	return handle
}

// NewCheckerTexture generates a size x size checkerboard with cells squares per side, alternating between
// the two colors given.
func (r *Renderer) NewCheckerTexture(size, cells int, a, b color.Color) skatescene.Texture {

	if cells < 1 {
		cells = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cellSize := size / cells
	if cellSize < 1 {
		cellSize = 1
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cellSize+y/cellSize)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}

	return r.AddTexture(img)

}

// RemoveTexture disposes of the image behind a texture handle.
func (r *Renderer) RemoveTexture(handle skatescene.Texture) {
	if img, ok := r.textures[handle]; ok {
		img.Deallocate()
		delete(r.textures, handle)
	}
}

func (r *Renderer) image(tri raster.Triangle) *ebiten.Image {

	if !tri.Textured {
		return r.defaultImg
	}

	img, ok := r.textures[tri.Texture]
	if !ok {
		if !r.missing[tri.Texture] {
			r.missing[tri.Texture] = true
			r.logger.Warn("drawing with unknown texture, falling back to untextured", zap.Uint32("handle", uint32(tri.Texture)))
		}
		return r.defaultImg
	}

	return img

}

// Present draws the Frame's triangles onto the screen, farthest first. Consecutive triangles sharing an image
// go out in a single DrawTriangles call.
func (r *Renderer) Present(screen *ebiten.Image) {

	r.DrawnTris = 0

	var current *ebiten.Image

	for _, tri := range r.Frame.Triangles() {

		img := r.image(tri)

		if img != current || len(r.vertexList)+3 > cap(r.vertexList) {
			r.flush(screen, current)
			current = img
		}

		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		textured := img != r.defaultImg

		start := uint16(len(r.vertexList))

		for _, v := range tri.Vertices {

			vertex := ebiten.Vertex{
				DstX:   v.Position.X(),
				DstY:   v.Position.Y(),
				ColorR: tri.Color.X(),
				ColorG: tri.Color.Y(),
				ColorB: tri.Color.Z(),
				ColorA: 1,
			}

			if textured {
				vertex.SrcX = v.UV.X() * float32(w)
				vertex.SrcY = v.UV.Y() * float32(h)
			} else {
				vertex.SrcX = float32(w) / 2
				vertex.SrcY = float32(h) / 2
			}

			r.vertexList = append(r.vertexList, vertex)

		}

		r.indexList = append(r.indexList, start, start+1, start+2)
		r.DrawnTris++

	}

	r.flush(screen, current)

}

func (r *Renderer) flush(screen *ebiten.Image, img *ebiten.Image) {

	if len(r.indexList) == 0 || img == nil {
		return
	}

	options := &ebiten.DrawTrianglesOptions{}
	options.Address = ebiten.AddressRepeat
	options.Blend = ebiten.BlendSourceOver

	screen.DrawTriangles(r.vertexList, r.indexList, img, options)

	r.vertexList = r.vertexList[:0]
	r.indexList = r.indexList[:0]

}
