package canvas

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Faultbox/paintbox/pkg/math"
)

// Kind identifies the payload an Object carries.
type Kind uint8

// Object kinds. Every switch over Kind ends in a panic so a new kind cannot
// be added without handling it everywhere.
const (
	KindImage Kind = iota
	KindRect
	KindStroke

	kindCount
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindRect:
		return "rect"
	case KindStroke:
		return "stroke"
	default:
		panic(fmt.Sprintf("canvas: invalid object kind %d", k))
	}
}

// NameMax is the maximum stored length of an object name in bytes.
const NameMax = 128

// Object is one drawable element of a Scene.
type Object struct {
	ID   uuid.UUID
	Kind Kind

	name string

	// Image and Rect placement. Stroke placement is derived from its points.
	rect math.Rect

	Texture Texture // KindImage
	Color   Color   // KindRect
	Stroke  Stroke  // KindStroke
}

// NewImage creates an image object at the origin with the texture's natural
// size. The object takes ownership of tex.
func NewImage(name string, tex Texture) *Object {
	w, h := tex.Size()
	o := &Object{
		ID:      uuid.New(),
		Kind:    KindImage,
		rect:    math.Rect{W: float32(w), H: float32(h)},
		Texture: tex,
	}
	o.SetName(name)
	return o
}

// NewRect creates a filled rectangle named after its color.
func NewRect(r math.Rect, c Color) *Object {
	o := &Object{
		ID:    uuid.New(),
		Kind:  KindRect,
		rect:  r,
		Color: c,
	}
	o.SetName(fmt.Sprintf("Rectangle (%s)", c.Hex()))
	return o
}

// NewStroke wraps a finished stroke.
func NewStroke(s Stroke) *Object {
	o := &Object{
		ID:     uuid.New(),
		Kind:   KindStroke,
		Stroke: s,
	}
	o.SetName("Stroke")
	return o
}

// Name returns the display name.
func (o *Object) Name() string {
	return o.name
}

// SetName stores name truncated to NameMax bytes. Truncation backs off to a
// rune boundary so the stored name is always valid UTF-8 when the input is.
func (o *Object) SetName(name string) {
	if len(name) > NameMax {
		n := NameMax
		for n > 0 && !utf8.RuneStart(name[n]) {
			n--
		}
		name = name[:n]
	}
	o.name = name
}

// Bounds returns the world-space bounding box.
func (o *Object) Bounds() math.Rect {
	switch o.Kind {
	case KindImage, KindRect:
		return o.rect
	case KindStroke:
		return o.Stroke.Bounds()
	default:
		panic(fmt.Sprintf("canvas: invalid object kind %d", o.Kind))
	}
}

// SetBounds moves and resizes the object so Bounds returns b. Strokes remap
// every point.
func (o *Object) SetBounds(b math.Rect) {
	switch o.Kind {
	case KindImage, KindRect:
		o.rect = b
	case KindStroke:
		o.Stroke.SetBounds(b)
	default:
		panic(fmt.Sprintf("canvas: invalid object kind %d", o.Kind))
	}
}

// Unload releases resources the object owns. Calling it twice is a no-op.
func (o *Object) Unload() {
	switch o.Kind {
	case KindImage:
		if o.Texture != nil {
			o.Texture.Release()
			o.Texture = nil
		}
	case KindRect:
	case KindStroke:
		o.Stroke.Points = nil
	default:
		panic(fmt.Sprintf("canvas: invalid object kind %d", o.Kind))
	}
}

// String implements fmt.Stringer for logs.
func (o *Object) String() string {
	return fmt.Sprintf("%s %q", o.Kind, o.name)
}
