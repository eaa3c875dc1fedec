package canvas

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/Faultbox/paintbox/pkg/math"
)

func objectOfKind(k Kind) *Object {
	switch k {
	case KindImage:
		return NewImage("photo.png", &fakeTexture{w: 64, h: 32})
	case KindRect:
		return NewRect(math.Rect{X: 1, Y: 2, W: 3, H: 4}, White)
	case KindStroke:
		return NewStroke(Stroke{Points: []math.Vec2{{X: 0, Y: 0}, {X: 10, Y: 10}}, Weight: 2})
	}
	return &Object{Kind: k}
}

// Every dispatch site must handle every kind. Adding a kind without
// updating them makes this test panic.
func TestKindDispatchIsExhaustive(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		t.Run(k.String(), func(t *testing.T) {
			o := objectOfKind(k)
			b := o.Bounds()
			o.SetBounds(b.Translate(math.Vec2{X: 1, Y: 1}))
			DrawObject(&recordingPainter{}, o)
			o.Unload()
		})
	}
}

func TestInvalidKindPanics(t *testing.T) {
	sites := map[string]func(o *Object){
		"String":    func(o *Object) { _ = o.Kind.String() },
		"Bounds":    func(o *Object) { o.Bounds() },
		"SetBounds": func(o *Object) { o.SetBounds(math.Rect{}) },
		"Unload":    func(o *Object) { o.Unload() },
		"Draw":      func(o *Object) { DrawObject(&recordingPainter{}, o) },
	}
	for name, site := range sites {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s on kind %d did not panic", name, kindCount)
				}
			}()
			site(&Object{Kind: kindCount})
		})
	}
}

func TestNewImageUsesNaturalSize(t *testing.T) {
	o := NewImage("cat.png", &fakeTexture{w: 640, h: 480})
	if got, want := o.Bounds(), (math.Rect{W: 640, H: 480}); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if o.Name() != "cat.png" {
		t.Errorf("Name() = %q, want cat.png", o.Name())
	}
}

func TestNewRectName(t *testing.T) {
	o := NewRect(math.Rect{W: 1, H: 1}, Color{R: 0xff, G: 0x80, B: 0x00, A: 0xff})
	if got, want := o.Name(), "Rectangle (#ff8000)"; got != want {
		t.Errorf("Name() = %q, want %q", got, want)
	}
}

func TestObjectIDsAreUnique(t *testing.T) {
	a := NewRect(math.Rect{}, White)
	b := NewRect(math.Rect{}, White)
	if a.ID == b.ID {
		t.Error("two objects share an ID")
	}
}

func TestSetNameTruncates(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"short", "Stroke", 6},
		{"exact", strings.Repeat("a", NameMax), NameMax},
		{"long", strings.Repeat("a", NameMax+50), NameMax},
		// 'é' is two bytes; byte NameMax falls inside a rune.
		{"multibyte", "a" + strings.Repeat("é", NameMax), NameMax - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var o Object
			o.SetName(tt.in)
			if len(o.Name()) != tt.want {
				t.Errorf("len(Name()) = %d, want %d", len(o.Name()), tt.want)
			}
			if !utf8.ValidString(o.Name()) {
				t.Errorf("Name() %q is not valid UTF-8", o.Name())
			}
		})
	}
}

func TestUnloadReleasesOnce(t *testing.T) {
	tex := &fakeTexture{w: 1, h: 1}
	o := NewImage("x", tex)
	o.Unload()
	o.Unload()
	if tex.released != 1 {
		t.Errorf("released %d times, want 1", tex.released)
	}
	if o.Texture != nil {
		t.Error("texture handle not cleared after release")
	}
}

func TestRectSetBounds(t *testing.T) {
	o := NewRect(math.Rect{W: 10, H: 10}, White)
	want := math.Rect{X: -5, Y: 7, W: 30, H: 2}
	o.SetBounds(want)
	if got := o.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}
