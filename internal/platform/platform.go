// Package platform holds what the host process owns and lends to the
// editor module every frame. The host and every module generation link
// this package, so its types must not change while the process runs.
package platform

import (
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/engine/input"
	"github.com/Faultbox/paintbox/internal/engine/window"
)

// Env is the host environment.
type Env struct {
	Config *config.Config
	Window *window.Window
	Input  *input.Input
	Log    *zap.Logger
}
