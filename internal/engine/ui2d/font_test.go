package ui2d

import (
	"testing"

	"github.com/Faultbox/paintbox/pkg/math"
)

func TestFontMeasure(t *testing.T) {
	f := NewFont()
	if got := f.CellSize(); got != (math.Vec2{X: 7, Y: 13}) {
		t.Fatalf("CellSize() = %+v, want {7 13}", got)
	}

	tests := []struct {
		s     string
		scale float32
		want  math.Vec2
	}{
		{"", 1, math.Vec2{}},
		{"abc", 1, math.Vec2{X: 21, Y: 13}},
		{"ab\nc", 2, math.Vec2{X: 28, Y: 52}},
	}
	for _, tt := range tests {
		if got := f.Measure(tt.s, tt.scale); got != tt.want {
			t.Errorf("Measure(%q, %v) = %+v, want %+v", tt.s, tt.scale, got, tt.want)
		}
	}
}

func TestFontGlyphs(t *testing.T) {
	f := NewFont()
	if f.GlyphUV('é') != f.GlyphUV('?') {
		t.Error("non-ASCII rune does not fall back to '?'")
	}

	uv := f.GlyphUV('A')
	b := f.Atlas().Bounds()
	x0 := int(uv.X * float32(b.Dx()))
	y0 := int(uv.Y * float32(b.Dy()))
	inked := false
	for y := y0; y < y0+13; y++ {
		for x := x0; x < x0+7; x++ {
			if f.Atlas().NRGBAAt(x, y).A > 0 {
				inked = true
			}
		}
	}
	if !inked {
		t.Error("glyph 'A' has no coverage in the atlas")
	}
}

func TestDarken(t *testing.T) {
	got := Darken(ColorSidebarBg, 0.5)
	if got.R != 25 || got.A != 255 {
		t.Errorf("Darken() = %+v, want R=25 A=255", got)
	}
}
