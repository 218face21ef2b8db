package core

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a hex colour string: "#rrggbb", or "#rrggbbaa" for translucent fills.
// The empty Color means "terminal default" and renders as opaque white on
// surfaces that need a concrete value.
type Color string

// Colours shared by the HUD and overlays.
const (
	ColorDefault Color = ""
	ColorText    Color = "#334155" // slate-700
	ColorHUD     Color = "#e2e8f0"
	ColorNotice  Color = "#facc15"
	ColorDanger  Color = "#f87171"
	ColorMuted   Color = "#94a3b8"
)

// Hex returns the opaque "#rrggbb" part of the colour.
func (c Color) Hex() string {
	if len(c) == 9 {
		return string(c[:7])
	}
	return string(c)
}

// Alpha returns the opacity in [0, 1]. Colours without an alpha byte are opaque.
func (c Color) Alpha() float64 {
	if len(c) != 9 {
		return 1
	}
	a, err := strconv.ParseUint(string(c[7:9]), 16, 8)
	if err != nil {
		return 1
	}
	return float64(a) / 255
}

// Translucent reports whether the colour carries an alpha below 1.
func (c Color) Translucent() bool {
	return c.Alpha() < 1
}

// Validate checks that the colour parses.
func (c Color) Validate() error {
	if c == ColorDefault {
		return nil
	}
	if len(c) != 7 && len(c) != 9 && len(c) != 4 {
		return fmt.Errorf("color %q: want #rgb, #rrggbb or #rrggbbaa", string(c))
	}
	if _, err := colorful.Hex(c.Hex()); err != nil {
		return fmt.Errorf("color %q: %w", string(c), err)
	}
	if len(c) == 9 {
		if _, err := strconv.ParseUint(string(c[7:9]), 16, 8); err != nil {
			return fmt.Errorf("color %q: bad alpha: %w", string(c), err)
		}
	}
	return nil
}

// NRGBA converts the colour for image-based surfaces.
// Invalid or default colours map to opaque white.
func (c Color) NRGBA() color.NRGBA {
	if c == ColorDefault {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	cf, err := colorful.Hex(c.Hex())
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	r, g, b := cf.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(c.Alpha()*255 + 0.5)}
}
