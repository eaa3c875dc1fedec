package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/engine/dialog"
	"github.com/Faultbox/paintbox/internal/engine/texture"
	"github.com/Faultbox/paintbox/internal/export"
)

var (
	imageFilter  = dialog.Filter{Description: "Image", Extensions: texture.Extensions}
	exportFilter = dialog.Filter{Description: "Image file", Extensions: export.Extensions}
)

// askPath runs a dialog and reports whether a path was chosen.
func (a *App) askPath(ask func() (string, error), title string) (string, bool) {
	path, err := ask()
	if err != nil {
		if !dialog.Cancelled(err) {
			a.svc.Log.Error("file dialog failed", zap.String("title", title), zap.Error(err))
		}
		return "", false
	}
	return path, path != ""
}

// openImage replaces the scene with a single image and fits the canvas to
// it. A file that fails to load leaves the scene as it was.
func (a *App) openImage() {
	path, ok := a.askPath(func() (string, error) {
		return a.svc.Dialogs.OpenFile("Open Image", imageFilter)
	}, "Open Image")
	if !ok {
		return
	}

	tex, err := a.svc.Images.Load(path)
	if err != nil {
		a.svc.Log.Error("open image failed", zap.String("path", path), zap.Error(err))
		a.svc.Dialogs.Error("Error opening image", fmt.Sprintf("Could not load image from %s", path))
		return
	}
	a.Editor.OpenImage(texture.Name(path), tex)
	a.svc.Log.Info("image opened", zap.String("path", path))
}

// OpenPath opens path as the base image without asking, as on startup.
func (a *App) OpenPath(path string) error {
	tex, err := a.svc.Images.Load(path)
	if err != nil {
		return err
	}
	a.Editor.OpenImage(texture.Name(path), tex)
	return nil
}

// addImage puts an image on top of the scene at the origin.
func (a *App) addImage() {
	path, ok := a.askPath(func() (string, error) {
		return a.svc.Dialogs.OpenFile("Add Image", imageFilter)
	}, "Add Image")
	if !ok {
		return
	}

	tex, err := a.svc.Images.Load(path)
	if err != nil {
		a.svc.Log.Error("add image failed", zap.String("path", path), zap.Error(err))
		a.svc.Dialogs.Error("Error opening image", fmt.Sprintf("Could not load image from %s", path))
		return
	}
	a.Editor.AddImage(texture.Name(path), tex)
}

// exportImage flattens the canvas area and writes it in the format named
// by the chosen extension.
func (a *App) exportImage() {
	path, ok := a.askPath(func() (string, error) {
		return a.svc.Dialogs.SaveFile("Export Image", exportFilter)
	}, "Export Image")
	if !ok {
		return
	}

	path = a.Export.WithDefaultExt(path)
	if err := a.ExportTo(path); err != nil {
		a.svc.Log.Error("export failed", zap.String("path", path), zap.Error(err))
		a.svc.Dialogs.Error("Error exporting image", fmt.Sprintf("Could not export image to %s", path))
		return
	}
	a.svc.Log.Info("image exported", zap.String("path", path))
}

// ExportTo flattens the canvas area into path. The software rasterizer
// takes over when the draw backend cannot hold the canvas.
func (a *App) ExportTo(path string) error {
	// Check the format first so nothing is rendered for a bad name.
	if _, err := export.FormatFromPath(path); err != nil {
		return err
	}
	img, err := export.FlattenOrRaster(&a.Editor.Scene, a.Editor.Canvas, a.svc.Target())
	if err != nil {
		return err
	}
	return export.Save(path, img, a.Export)
}
