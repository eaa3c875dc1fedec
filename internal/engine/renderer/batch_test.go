package renderer

import (
	"testing"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/texture"
	"github.com/Faultbox/paintbox/pkg/math"
)

// cpuBatch builds a batch whose vertex assembly can run without a GL
// context, as long as nothing switches textures with vertices pending.
func cpuBatch() *Batch {
	return &Batch{
		white: &Texture{id: 1, width: 1, height: 1},
		verts: make([]vertex, 0, maxVertices),
	}
}

func TestFillRectVertices(t *testing.T) {
	b := cpuBatch()
	b.FillRect(math.Rect{X: 10, Y: 20, W: 30, H: 40}, canvas.White)

	if len(b.verts) != 6 {
		t.Fatalf("vertices = %d, want 6", len(b.verts))
	}
	want := [6][2]float32{{10, 20}, {40, 20}, {40, 60}, {10, 20}, {40, 60}, {10, 60}}
	for i, v := range b.verts {
		if v.x != want[i][0] || v.y != want[i][1] {
			t.Errorf("vertex %d = (%v, %v), want %v", i, v.x, v.y, want[i])
		}
		if v.a != 1 {
			t.Errorf("vertex %d alpha = %v, want 1", i, v.a)
		}
	}
	if b.texture != 1 {
		t.Errorf("texture = %d, want the white texture", b.texture)
	}
}

func TestStrokeRectQuads(t *testing.T) {
	tests := []struct {
		name      string
		rect      math.Rect
		thickness float32
		quads     int
	}{
		{"outline", math.Rect{W: 100, H: 100}, 5, 4},
		{"too thin to hollow", math.Rect{W: 8, H: 100}, 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := cpuBatch()
			b.StrokeRect(tt.rect, tt.thickness, canvas.White)
			if got := len(b.verts) / 6; got != tt.quads {
				t.Errorf("quads = %d, want %d", got, tt.quads)
			}
		})
	}
}

func TestLineQuad(t *testing.T) {
	b := cpuBatch()
	b.Line(math.Vec2{X: 0, Y: 0}, math.Vec2{X: 10, Y: 0}, 4, canvas.Black)
	if len(b.verts) != 6 {
		t.Fatalf("vertices = %d, want 6", len(b.verts))
	}
	for _, v := range b.verts {
		if v.y != 2 && v.y != -2 {
			t.Errorf("vertex y = %v, want +-2", v.y)
		}
	}

	b.verts = b.verts[:0]
	b.Line(math.Vec2{X: 3, Y: 3}, math.Vec2{X: 3, Y: 3}, 4, canvas.Black)
	if len(b.verts) != 0 {
		t.Errorf("zero-length line produced %d vertices", len(b.verts))
	}
}

func TestGradientCornerColors(t *testing.T) {
	b := cpuBatch()
	red := canvas.Color{R: 255, A: 255}
	b.Gradient(math.Rect{W: 1, H: 1}, canvas.White, red, canvas.Black, canvas.Transparent)

	// Corner order in the triangle list: 0 1 2 0 2 3.
	if b.verts[1].g != 0 || b.verts[1].r != 1 {
		t.Errorf("top-right vertex = %+v, want red", b.verts[1])
	}
	if b.verts[5].a != 0 {
		t.Errorf("bottom-left alpha = %v, want 0", b.verts[5].a)
	}
}

func TestSkipsForeignTexturesAndMissingFont(t *testing.T) {
	b := cpuBatch()
	b.Image(texture.NewImage(whitePixel()), math.Rect{W: 1, H: 1})
	b.Image(&Texture{}, math.Rect{W: 1, H: 1})
	b.Text(math.Vec2{}, "hello", 1, canvas.White)
	if len(b.verts) != 0 {
		t.Errorf("vertices = %d, want 0", len(b.verts))
	}
	if got := b.Measure("hello", 1); got != (math.Vec2{}) {
		t.Errorf("Measure() without a font = %+v", got)
	}
}

func TestTextureSource(t *testing.T) {
	img := texture.NewImage(whitePixel())
	tex := &Texture{width: 1, height: 1, img: img}
	if tex.Source() == nil {
		t.Fatal("Source() = nil before release")
	}
	tex.Release()
	tex.Release()
	if tex.Source() != nil {
		t.Error("Source() != nil after release")
	}
}
