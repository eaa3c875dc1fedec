package canvas

import (
	"fmt"
	"image/color"
	gomath "math"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color, not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Common colors.
var (
	White       = Color{255, 255, 255, 255}
	Black       = Color{0, 0, 0, 255}
	Transparent = Color{}
)

// ParseHex parses #rrggbb or #rrggbbaa. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb or #rrggbbaa", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex returns the color as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Floats returns the components normalized to [0, 1].
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}

// FromHSV builds an opaque color from hue in degrees and saturation and
// value in [0, 1].
func FromHSV(hue, sat, val float32) Color {
	sat = clamp01(sat)
	val = clamp01(val)
	h := gomath.Mod(float64(hue), 360)
	if h < 0 {
		h += 360
	}

	// k-offsets per channel: 5 for red, 3 for green, 1 for blue.
	channel := func(n float64) uint8 {
		k := gomath.Mod(n+h/60, 6)
		f := float64(val) - float64(val)*float64(sat)*gomath.Max(0, gomath.Min(gomath.Min(k, 4-k), 1))
		return uint8(gomath.Round(f * 255))
	}
	return Color{R: channel(5), G: channel(3), B: channel(1), A: 255}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
