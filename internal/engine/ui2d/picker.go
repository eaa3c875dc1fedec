package ui2d

import (
	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/pkg/math"
)

const (
	hueSegments = 6
	svCells     = 8
	markerSize  = 10
)

// HuePicker draws a hue strip and updates hue, a fraction of the full
// circle in [0, 1], while the pointer is held on it.
func (c *Context) HuePicker(id string, width, height float32, hue *float32) bool {
	c.Row(height)
	r := c.place(width)

	changed := false
	if c.drag(c.fullID(id), r) {
		*hue = math.Clamp((c.input.Mouse.X-r.X)/r.W, 0, 1)
		changed = true
	}

	seg := r.W / hueSegments
	for i := 0; i < hueSegments; i++ {
		a := canvas.FromHSV(float32(i)*60, 1, 1)
		b := canvas.FromHSV(float32(i+1)*60, 1, 1)
		c.surface.Gradient(math.Rect{X: r.X + float32(i)*seg, Y: r.Y, W: seg, H: r.H}, a, b, b, a)
	}
	x := r.X + *hue*r.W
	c.surface.Line(math.Vec2{X: x, Y: r.Y}, math.Vec2{X: x, Y: r.Y + r.H}, 1, canvas.White)
	return changed
}

// SVPicker draws the saturation/value square for hue and updates pos, the
// marker offset from the square's top-left corner.
func (c *Context) SVPicker(id string, size, hue float32, pos *math.Vec2) bool {
	c.Row(size)
	r := c.place(size)

	changed := false
	if c.drag(c.fullID(id), r) {
		p := c.input.Mouse.Sub(r.Min())
		*pos = math.Vec2{X: math.Clamp(p.X, 0, r.W), Y: math.Clamp(p.Y, 0, r.H)}
		changed = true
	}

	cell := size / svCells
	at := func(i, j int) canvas.Color {
		return canvas.FromHSV(hue*360, float32(i)/svCells, 1-float32(j)/svCells)
	}
	for j := 0; j < svCells; j++ {
		for i := 0; i < svCells; i++ {
			cr := math.Rect{X: r.X + float32(i)*cell, Y: r.Y + float32(j)*cell, W: cell, H: cell}
			c.surface.Gradient(cr, at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}

	m := r.Min().Add(*pos)
	marker := math.Rect{X: m.X - markerSize/2, Y: m.Y - markerSize/2, W: markerSize, H: markerSize}
	c.surface.StrokeRect(marker, 1, canvas.White)
	return changed
}

// PickedColor converts picker state to a color: hue is a fraction of the
// circle, pos the marker offset inside a square of side size.
func PickedColor(hue float32, pos math.Vec2, size float32) canvas.Color {
	return canvas.FromHSV(hue*360, pos.X/size, 1-pos.Y/size)
}
