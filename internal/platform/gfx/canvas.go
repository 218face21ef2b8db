// Package gfx runs games in a desktop window through Ebitengine.
package gfx

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/stasis-arcade/internal/core"
)

// Canvas draws onto an Ebitengine image. One world unit is one pixel.
type Canvas struct {
	dst  *ebiten.Image
	face text.Face
}

// NewCanvas creates a canvas using the built-in 7x13 bitmap face.
func NewCanvas() *Canvas {
	return &Canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Target switches the image drawn on. Called once per frame.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the target image size.
func (c *Canvas) Size() (float64, float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillCircle draws a filled, antialiased circle.
func (c *Canvas) FillCircle(circ core.Circle, col core.Color) {
	vector.FillCircle(c.dst, float32(circ.X), float32(circ.Y), float32(circ.R), col.NRGBA(), true)
}

// StrokeCircle draws a circle outline of the given width.
func (c *Canvas) StrokeCircle(circ core.Circle, width float64, col core.Color) {
	if width <= 0 {
		width = 1
	}
	vector.StrokeCircle(c.dst, float32(circ.X), float32(circ.Y), float32(circ.R), float32(width), col.NRGBA(), true)
}

// FillRect draws a filled rectangle.
func (c *Canvas) FillRect(r core.RectF, col core.Color) {
	vector.FillRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), col.NRGBA(), false)
}

// DrawText draws text with its top-left corner at (x, y).
func (c *Canvas) DrawText(x, y float64, s string, col core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col.NRGBA())
	text.Draw(c.dst, s, c.face, op)
}

// DrawTextCentered draws text centred horizontally with its top at y.
func (c *Canvas) DrawTextCentered(y float64, s string, col core.Color) {
	w, _ := c.Size()
	tw, _ := text.Measure(s, c.face, 0)
	c.DrawText((w-tw)/2, y, s, col)
}
