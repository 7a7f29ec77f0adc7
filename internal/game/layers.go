package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ensureLayer returns the offscreen layer registered under id, allocating it
// when missing or when the size changed. An id is never registered twice.
func (g *Game) ensureLayer(id string, w, h int) *ebiten.Image {
	w, h = max(w, 1), max(h, 1)
	if img, ok := g.layers[id]; ok {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return img
		}
		img.Deallocate()
	}
	img := ebiten.NewImage(w, h)
	g.layers[id] = img
	return img
}

// canvas draws particles onto an ebiten image.
type canvas struct {
	img *ebiten.Image
}

func (c canvas) Clear() { c.img.Clear() }

func (c canvas) FillCircle(x, y, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), clr, true)
}
