package ui2d

import (
	"image"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/paintbox/pkg/math"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasCols  = 16
)

// Font is a fixed-width bitmap font baked into a single atlas image.
// Runes outside printable ASCII render as '?'.
type Font struct {
	atlas        *image.NRGBA
	cellW, cellH int
	rows         int
}

// NewFont bakes the 7x13 basic font.
func NewFont() *Font {
	face := basicfont.Face7x13
	f := &Font{
		cellW: face.Advance,
		cellH: face.Height,
		rows:  (lastGlyph - firstGlyph + atlasCols) / atlasCols,
	}

	mask := image.NewAlpha(image.Rect(0, 0, atlasCols*f.cellW, f.rows*f.cellH))
	d := font.Drawer{Dst: mask, Src: image.Opaque, Face: face}
	for r := rune(firstGlyph); r <= lastGlyph; r++ {
		i := int(r - firstGlyph)
		col, row := i%atlasCols, i/atlasCols
		d.Dot = fixed.P(col*f.cellW, row*f.cellH+face.Ascent)
		d.DrawString(string(r))
	}

	// White glyphs so the atlas can be tinted like any other texture.
	f.atlas = image.NewNRGBA(mask.Rect)
	for i, a := range mask.Pix {
		f.atlas.Pix[i*4+0] = 255
		f.atlas.Pix[i*4+1] = 255
		f.atlas.Pix[i*4+2] = 255
		f.atlas.Pix[i*4+3] = a
	}
	return f
}

// Atlas returns the glyph atlas.
func (f *Font) Atlas() *image.NRGBA {
	return f.atlas
}

// CellSize returns the unscaled glyph cell size.
func (f *Font) CellSize() math.Vec2 {
	return math.Vec2{X: float32(f.cellW), Y: float32(f.cellH)}
}

// GlyphUV returns the normalized atlas rectangle of r.
func (f *Font) GlyphUV(r rune) math.Rect {
	if r < firstGlyph || r > lastGlyph {
		r = '?'
	}
	i := int(r - firstGlyph)
	col, row := i%atlasCols, i/atlasCols
	b := f.atlas.Rect
	return math.Rect{
		X: float32(col*f.cellW) / float32(b.Dx()),
		Y: float32(row*f.cellH) / float32(b.Dy()),
		W: float32(f.cellW) / float32(b.Dx()),
		H: float32(f.cellH) / float32(b.Dy()),
	}
}

// Measure returns the size of s drawn at scale. Lines split on '\n'.
func (f *Font) Measure(s string, scale float32) math.Vec2 {
	if s == "" {
		return math.Vec2{}
	}
	widest := 0
	lines := strings.Split(s, "\n")
	for _, line := range lines {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	return math.Vec2{
		X: float32(widest*f.cellW) * scale,
		Y: float32(len(lines)*f.cellH) * scale,
	}
}
