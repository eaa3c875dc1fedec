// Package ui2d is a small immediate-mode widget layer drawn through a
// Surface. Widgets are laid out in rows inside a panel and report clicks
// as they are drawn.
package ui2d

import (
	"fmt"

	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/pkg/math"
)

// Surface receives the primitives widgets draw, in screen coordinates.
type Surface interface {
	FillRect(r math.Rect, c canvas.Color)
	StrokeRect(r math.Rect, thickness float32, c canvas.Color)
	Line(a, b math.Vec2, thickness float32, c canvas.Color)
	// Gradient fills r interpolating the corner colors, clockwise from
	// the top-left.
	Gradient(r math.Rect, tl, tr, br, bl canvas.Color)
	Text(pos math.Vec2, s string, scale float32, c canvas.Color)
}

// MeasureFunc returns the size of s drawn at scale.
type MeasureFunc func(s string, scale float32) math.Vec2

// Layout constants.
const (
	Padding   float32 = 10
	Gap       float32 = 5
	RowHeight float32 = 28
	TextScale float32 = 1.5
)

// State is the widget state that outlives a frame. It lives in the
// application record; a Context only points at it.
type State struct {
	Active string
	Debug  bool
}

// Context draws widgets for one frame at a time.
type Context struct {
	state   *State
	surface Surface
	measure MeasureFunc
	input   InputState

	panel    math.Rect
	panelID  string
	cursor   math.Vec2
	rowH     float32
	rowStart float32
}

// NewContext binds a context to its persistent state and drawing
// backend.
func NewContext(state *State, surface Surface, measure MeasureFunc) *Context {
	return &Context{state: state, surface: surface, measure: measure}
}

// State returns the persistent widget state.
func (c *Context) State() *State {
	return c.state
}

// Input returns the pointer state of the current frame.
func (c *Context) Input() *InputState {
	return &c.input
}

// Begin starts a frame.
func (c *Context) Begin(in canvas.Input) {
	c.input.Set(in)
}

// End finishes a frame. Releasing the button anywhere ends a drag.
func (c *Context) End() {
	if !c.input.LeftDown {
		c.state.Active = ""
	}
}

// BeginPanel fills r with bg and starts laying widgets out inside it.
func (c *Context) BeginPanel(id string, r math.Rect, bg canvas.Color) {
	c.panelID = id
	c.panel = r
	c.surface.FillRect(r, bg)
	c.cursor = math.Vec2{X: r.X + Padding, Y: r.Y + Padding}
	c.rowStart = c.cursor.Y
	c.rowH = 0
}

// EndPanel stops laying out into the current panel.
func (c *Context) EndPanel() {
	c.panelID = ""
}

// Row moves the layout cursor to a new row of height h.
func (c *Context) Row(h float32) {
	if c.rowH > 0 {
		c.cursor.Y += c.rowH + Gap
	}
	c.cursor.X = c.panel.X + Padding
	c.rowStart = c.cursor.Y
	c.rowH = h
}

// RowRect returns the full-width rectangle of the current row.
func (c *Context) RowRect() math.Rect {
	return math.Rect{
		X: c.panel.X + Padding,
		Y: c.rowStart,
		W: c.panel.W - 2*Padding,
		H: c.rowH,
	}
}

// RowHovered reports whether the pointer is over the current row.
func (c *Context) RowHovered() bool {
	return c.input.MouseIn(c.RowRect())
}

// Remaining returns the width left in the current row.
func (c *Context) Remaining() float32 {
	return c.panel.X + c.panel.W - Padding - c.cursor.X
}

// Spacer skips width horizontally.
func (c *Context) Spacer(width float32) {
	c.cursor.X += width + Gap
}

// place allocates a widget box in the current row. A zero width takes the
// rest of the row.
func (c *Context) place(width float32) math.Rect {
	if c.rowH == 0 {
		c.Row(RowHeight)
	}
	if width <= 0 {
		width = c.Remaining()
	}
	r := math.Rect{X: c.cursor.X, Y: c.rowStart, W: width, H: c.rowH}
	c.cursor.X += width + Gap
	if c.state.Debug {
		c.surface.StrokeRect(r, 1, ColorDebug)
	}
	return r
}

func (c *Context) fullID(id string) string {
	return c.panelID + "/" + id
}

// TextWidth returns the width of s at the default text scale.
func (c *Context) TextWidth(s string) float32 {
	return c.measure(s, TextScale).X
}

func (c *Context) centeredText(r math.Rect, s string, col canvas.Color) {
	size := c.measure(s, TextScale)
	pos := math.Vec2{X: r.X + (r.W-size.X)/2, Y: r.Y + (r.H-size.Y)/2}
	c.surface.Text(pos, s, TextScale, col)
}

// Button draws a button and reports whether it was pressed this frame.
// A zero width fits the label.
func (c *Context) Button(id string, width float32, label string) bool {
	if width == 0 {
		width = c.TextWidth(label) + 2*Padding
	}
	return c.button(c.fullID(id), c.place(width), label, false)
}

// Toggle draws a button that stays highlighted while selected.
func (c *Context) Toggle(id string, width float32, label string, selected bool) bool {
	if width == 0 {
		width = c.TextWidth(label) + 2*Padding
	}
	return c.button(c.fullID(id), c.place(width), label, selected)
}

func (c *Context) button(id string, r math.Rect, label string, selected bool) bool {
	hovered := c.input.MouseIn(r)
	clicked := false
	if hovered && c.input.takeClick() {
		c.state.Active = id
		clicked = true
	}

	bg := ColorButtonNormal
	switch {
	case c.state.Active == id || selected:
		bg = ColorButtonActive
	case hovered:
		bg = ColorButtonHover
	}
	c.surface.FillRect(r, bg)
	c.surface.StrokeRect(r, 1, ColorPanelBorder)
	c.centeredText(r, label, ColorText)
	return clicked
}

// Label draws text. A zero width fits the text.
func (c *Context) Label(text string) {
	c.LabelColored(text, ColorText)
}

// LabelColored draws text in col.
func (c *Context) LabelColored(text string, col canvas.Color) {
	size := c.measure(text, TextScale)
	r := c.place(size.X)
	c.surface.Text(math.Vec2{X: r.X, Y: r.Y + (r.H-size.Y)/2}, text, TextScale, col)
}

// Labelf draws formatted text.
func (c *Context) Labelf(format string, args ...any) {
	c.Label(fmt.Sprintf(format, args...))
}

// Swatch draws a color square and reports whether it was pressed.
func (c *Context) Swatch(id string, size float32, col canvas.Color) bool {
	r := c.place(size)
	r.H = size
	clicked := c.input.MouseIn(r) && c.input.takeClick()
	c.surface.FillRect(r, col)
	c.surface.StrokeRect(r, 1, ColorPanelBorder)
	return clicked
}

// drag reports whether the widget id owns the pointer: it was pressed
// inside r and the button is still held.
func (c *Context) drag(id string, r math.Rect) bool {
	if c.input.MouseIn(r) && c.input.takeClick() {
		c.state.Active = id
	}
	return c.state.Active == id && c.input.LeftDown
}

// Slider draws a horizontal slider for v in [lo, hi] and returns the
// possibly changed value.
func (c *Context) Slider(id string, width float32, v, lo, hi float32) (float32, bool) {
	r := c.place(width)
	track := math.Rect{X: r.X, Y: r.Y + r.H/2 - 1.5, W: r.W, H: 3}

	changed := false
	if c.drag(c.fullID(id), r) {
		t := math.Clamp((c.input.Mouse.X-r.X)/r.W, 0, 1)
		if nv := math.Lerp(lo, hi, t); nv != v {
			v = nv
			changed = true
		}
	}

	const knob = 14
	t := (v - lo) / (hi - lo)
	kx := r.X + t*r.W - knob/2
	c.surface.FillRect(track, ColorText)
	c.surface.FillRect(math.Rect{X: kx, Y: r.Y + r.H/2 - knob/2, W: knob, H: knob}, canvas.White)
	return v, changed
}
