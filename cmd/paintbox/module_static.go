//go:build !hotreload

package main

import (
	"github.com/Faultbox/paintbox/internal/app"
	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/internal/platform"
	"github.com/Faultbox/paintbox/internal/reload"
)

// newLoader links the editor into the binary. F5 and SIGHUP still run the
// full detach and adopt cycle against the same code.
func newLoader(cfg *config.Config) (reload.Loader[platform.Env], func(), error) {
	if cfg.Reload.Enabled {
		logger.Warn("live reload needs a build with -tags hotreload; running the linked editor")
	}
	return &reload.Static[platform.Env]{Module: app.Module()}, func() {}, nil
}
