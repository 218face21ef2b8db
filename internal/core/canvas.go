package core

import (
	"math"
	"unicode/utf8"
)

// Canvas is the drawing surface a game paints itself onto once per frame.
// Coordinates are world units with the origin at the top-left corner.
type Canvas interface {
	// Size returns the drawable area in world units.
	Size() (w, h float64)
	FillCircle(c Circle, col Color)
	StrokeCircle(c Circle, width float64, col Color)
	FillRect(r RectF, col Color)
	// DrawText writes text with its top-left corner at (x, y).
	DrawText(x, y float64, text string, col Color)
	// DrawTextCentered writes text centred horizontally on the row containing y.
	DrawTextCentered(y float64, text string, col Color)
}

// Default world size of one terminal cell. Terminal cells are roughly twice
// as tall as they are wide, so a cell covers 8x16 world units.
const (
	DefaultCellWidth  = 8.0
	DefaultCellHeight = 16.0
)

// Glyphs used when rasterising shapes into cells.
const (
	GlyphSolid       = '█'
	GlyphTranslucent = '░'
	GlyphDot         = '●'
	GlyphOutline     = 'o'
)

// CellCanvas rasterises world-space shapes into a Screen.
type CellCanvas struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewCellCanvas wraps a screen; each cell covers cellW x cellH world units.
func NewCellCanvas(s *Screen, cellW, cellH float64) *CellCanvas {
	if cellW <= 0 {
		cellW = DefaultCellWidth
	}
	if cellH <= 0 {
		cellH = DefaultCellHeight
	}
	return &CellCanvas{screen: s, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (c *CellCanvas) Screen() *Screen {
	return c.screen
}

// Size returns the screen size converted to world units.
func (c *CellCanvas) Size() (float64, float64) {
	return float64(c.screen.Width()) * c.cellW, float64(c.screen.Height()) * c.cellH
}

// cellOf returns the cell containing the world point.
func (c *CellCanvas) cellOf(x, y float64) (int, int) {
	return int(math.Floor(x / c.cellW)), int(math.Floor(y / c.cellH))
}

// cellCentre returns the world coordinates of a cell's centre.
func (c *CellCanvas) cellCentre(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * c.cellW, (float64(cy) + 0.5) * c.cellH
}

// FillCircle marks every cell whose centre lies inside the circle. Circles
// smaller than half a row collapse to a single dot at their centre cell.
func (c *CellCanvas) FillCircle(circ Circle, col Color) {
	glyph := GlyphSolid
	switch {
	case col.Translucent():
		glyph = GlyphTranslucent
	case circ.R < c.cellH:
		glyph = GlyphDot
	}

	cx, cy := c.cellOf(circ.X, circ.Y)
	if circ.R < c.cellH/2 {
		c.screen.SetCell(cx, cy, glyph, col)
		return
	}

	c.forCellsInCircle(circ, func(x, y int) {
		c.screen.SetCell(x, y, glyph, col)
	})
	c.screen.SetCell(cx, cy, glyph, col)
}

// StrokeCircle outlines the circle: the covered cells that have at least one
// uncovered 4-neighbour. Stroke width is below cell resolution and ignored.
func (c *CellCanvas) StrokeCircle(circ Circle, _ float64, col Color) {
	inside := func(x, y int) bool {
		wx, wy := c.cellCentre(x, y)
		return DistSq(wx, wy, circ.X, circ.Y) <= circ.R*circ.R
	}
	c.forCellsInCircle(circ, func(x, y int) {
		if inside(x-1, y) && inside(x+1, y) && inside(x, y-1) && inside(x, y+1) {
			return
		}
		c.screen.SetCell(x, y, GlyphOutline, col)
	})
}

func (c *CellCanvas) forCellsInCircle(circ Circle, fn func(x, y int)) {
	minX, minY := c.cellOf(circ.X-circ.R, circ.Y-circ.R)
	maxX, maxY := c.cellOf(circ.X+circ.R, circ.Y+circ.R)
	r2 := circ.R * circ.R
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			wx, wy := c.cellCentre(x, y)
			if DistSq(wx, wy, circ.X, circ.Y) <= r2 {
				fn(x, y)
			}
		}
	}
}

// FillRect marks every cell whose centre lies inside the rectangle, or the
// cell under the rectangle's centre if it is smaller than a cell.
func (c *CellCanvas) FillRect(r RectF, col Color) {
	glyph := GlyphSolid
	if col.Translucent() {
		glyph = GlyphTranslucent
	}

	minX, minY := c.cellOf(r.X, r.Y)
	maxX, maxY := c.cellOf(r.Right(), r.Bottom())
	hit := false
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			wx, wy := c.cellCentre(x, y)
			if wx >= r.X && wx <= r.Right() && wy >= r.Y && wy <= r.Bottom() {
				c.screen.SetCell(x, y, glyph, col)
				hit = true
			}
		}
	}
	if !hit {
		cx, cy := c.cellOf(r.X+r.W/2, r.Y+r.H/2)
		c.screen.SetCell(cx, cy, glyph, col)
	}
}

// DrawText writes text starting at the cell containing (x, y).
func (c *CellCanvas) DrawText(x, y float64, text string, col Color) {
	cx, cy := c.cellOf(x, y)
	c.screen.DrawTextColor(cx, cy, text, col)
}

// DrawTextCentered writes text centred on the row containing y.
func (c *CellCanvas) DrawTextCentered(y float64, text string, col Color) {
	_, cy := c.cellOf(0, y)
	c.screen.DrawTextCentered(cy, text, col)
}

// ColorPanel is the backdrop behind overlay messages.
const ColorPanel Color = "#0f172a"

// DrawMessage draws a centred panel with a title line and a subtitle line.
func DrawMessage(dst Canvas, title, subtitle string) {
	w, h := dst.Size()
	n := max(utf8.RuneCountInString(title), utf8.RuneCountInString(subtitle)) + 4
	boxW := math.Min(w, float64(n)*DefaultCellWidth)
	boxH := math.Min(h, 5*DefaultCellHeight)
	dst.FillRect(RectF{X: (w - boxW) / 2, Y: (h - boxH) / 2, W: boxW, H: boxH}, ColorPanel)

	dst.DrawTextCentered(h/2-DefaultCellHeight, title, ColorNotice)
	if subtitle != "" {
		dst.DrawTextCentered(h/2+DefaultCellHeight, subtitle, ColorHUD)
	}
}
