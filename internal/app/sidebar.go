package app

import (
	"github.com/Faultbox/paintbox/internal/canvas"
	"github.com/Faultbox/paintbox/internal/engine/ui2d"
	"github.com/Faultbox/paintbox/pkg/math"
)

const (
	sliderWidth  float32 = 100
	swatchSize   float32 = 30
	pickerSize   float32 = 128
	hueStripH    float32 = 30
	listRowH     float32 = 24
	listTextGap  float32 = 8
	ellipsis             = ".."
	objectsTitle         = "Objects in Scene:"
)

// listAction is an object list edit, applied after the list is drawn so
// the scene does not change under the loop.
type listAction struct {
	kind  int
	index int
}

const (
	actionNone = iota
	actionUp
	actionDown
	actionRemove
)

func (a *App) drawSidebar(r math.Rect) {
	ui := a.ui
	e := &a.Editor

	ui.BeginPanel("sidebar", r, ui2d.ColorSidebarBg)
	defer ui.EndPanel()

	ui.Row(ui2d.RowHeight)
	if ui.Button("open", 0, "Open Image") {
		a.openImage()
	}
	if ui.Button("export", 0, "Export Image") {
		a.exportImage()
	}

	for _, t := range canvas.Tools {
		ui.Row(ui2d.RowHeight)
		if ui.Toggle("tool/"+t.String(), 0, t.String(), e.Tool == t) {
			e.SetTool(t)
		}
		if t == canvas.ToolDraw && e.Tool == canvas.ToolDraw {
			w, changed := ui.Slider("weight", sliderWidth, e.StrokeWeight,
				e.Settings.StrokeWeightMin, e.Settings.StrokeWeightMax)
			if changed {
				e.SetStrokeWeight(w)
			}
			ui.Labelf("%f", e.StrokeWeight)
		}
	}

	ui.Row(ui2d.RowHeight)
	if ui.Button("add", 0, "Add Image") {
		a.addImage()
	}

	ui.Row(swatchSize)
	ui.Label("Pick Color:")
	if ui.Swatch("color", swatchSize, e.Color) {
		a.Picker.Open = !a.Picker.Open
	}
	if a.Picker.Open {
		changed := ui.HuePicker("hue", pickerSize, hueStripH, &a.Picker.Hue)
		if ui.SVPicker("sv", pickerSize, a.Picker.Hue, &a.Picker.Pos) || changed {
			e.Color = ui2d.PickedColor(a.Picker.Hue, a.Picker.Pos, pickerSize)
		}
	}

	ui.Row(ui2d.RowHeight)
	ui.Labelf("Current Zoom Level: %f", e.Camera.Zoom)

	if e.Scene.Len() > 0 {
		ui.Row(ui2d.RowHeight)
		ui.Label(objectsTitle)
		a.drawObjectList()
	}
}

// drawObjectList lists objects topmost first.
func (a *App) drawObjectList() {
	ui := a.ui
	e := &a.Editor
	act := listAction{kind: actionNone}

	for i := e.Scene.Len() - 1; i >= 0; i-- {
		o := e.Scene.At(i)
		id := o.ID.String()

		ui.Row(listRowH)
		if ui.RowHovered() {
			e.Hovered = i
		}

		buttons := ui.TextWidth("^") + ui.TextWidth("v") + ui.TextWidth("Remove") + 6*ui2d.Padding + 3*ui2d.Gap
		room := ui.Remaining() - buttons - listTextGap
		name := fit(o.Name(), room, ui.TextWidth)
		ui.Label(name)
		ui.Spacer(ui.Remaining() - buttons)

		if ui.Button(id+"/up", 0, "^") {
			act = listAction{kind: actionUp, index: i}
		}
		if ui.Button(id+"/down", 0, "v") {
			act = listAction{kind: actionDown, index: i}
		}
		if ui.Button(id+"/remove", 0, "Remove") {
			act = listAction{kind: actionRemove, index: i}
		}
	}

	switch act.kind {
	case actionUp:
		e.Scene.MoveUp(act.index)
	case actionDown:
		e.Scene.MoveDown(act.index)
	case actionRemove:
		e.Remove(act.index)
	}
}

// fit shortens s with a trailing ellipsis until it is at most width wide.
func fit(s string, width float32, measure func(string) float32) string {
	if measure(s) <= width {
		return s
	}
	runes := []rune(s)
	for n := len(runes) - 1; n > 0; n-- {
		t := string(runes[:n]) + ellipsis
		if measure(t) <= width {
			return t
		}
	}
	return ellipsis
}
