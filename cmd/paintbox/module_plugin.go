//go:build hotreload

package main

import (
	"errors"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/internal/platform"
	"github.com/Faultbox/paintbox/internal/reload"
)

// newLoader opens the editor from the plugin named in the config.
func newLoader(cfg *config.Config) (reload.Loader[platform.Env], func(), error) {
	if cfg.Reload.Plugin == "" {
		return nil, nil, errors.New("reload.plugin is not set; pass -plugin")
	}
	p, err := reload.NewPlugin[platform.Env](cfg.Reload.Plugin)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := p.Close(); err != nil {
			logger.Warn("failed to remove plugin copies", zap.String("dir", p.Dir), zap.Error(err))
		}
	}
	return p, closeFn, nil
}
