package ui2d

import "github.com/Faultbox/paintbox/internal/canvas"

// Theme colors.
var (
	ColorSidebarBg    = canvas.Color{R: 50, G: 50, B: 50, A: 255}
	ColorPanelBorder  = canvas.Color{R: 77, G: 77, B: 102, A: 255}
	ColorButtonNormal = canvas.Color{R: 38, G: 38, B: 51, A: 255}
	ColorButtonHover  = canvas.Color{R: 64, G: 64, B: 89, A: 255}
	ColorButtonActive = canvas.Color{R: 26, G: 77, B: 128, A: 255}
	ColorInputBg      = canvas.Color{R: 13, G: 13, B: 20, A: 255}
	ColorText         = canvas.Color{R: 230, G: 230, B: 230, A: 255}
	ColorTextDim      = canvas.Color{R: 128, G: 128, B: 153, A: 255}
	ColorHighlight    = canvas.Color{R: 51, G: 153, B: 230, A: 255}
	ColorDebug        = canvas.Color{R: 255, G: 0, B: 255, A: 255}
)

// Darken scales the color channels toward black, keeping alpha.
func Darken(c canvas.Color, factor float32) canvas.Color {
	k := 1 - factor
	return canvas.Color{
		R: uint8(float32(c.R) * k),
		G: uint8(float32(c.G) * k),
		B: uint8(float32(c.B) * k),
		A: c.A,
	}
}
