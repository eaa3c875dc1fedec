// Package main is the entry point for the paintbox editor host.
//
// The host owns the window, the logger and the frame loop. The editor
// itself is a reload.Module: linked in statically by default, or loaded
// from a Go plugin when built with -tags hotreload.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/config"
	"github.com/Faultbox/paintbox/internal/engine/input"
	"github.com/Faultbox/paintbox/internal/engine/window"
	"github.com/Faultbox/paintbox/internal/logger"
	"github.com/Faultbox/paintbox/internal/platform"
	"github.com/Faultbox/paintbox/internal/reload"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.SaveRequested() {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config written to", path)
		return
	}

	if err := logger.Init(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== paintbox ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("editor error", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Info("editor closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New("paintbox", cfg.Window)
	if err != nil {
		return err
	}
	defer win.Close()

	env := &platform.Env{
		Config: cfg,
		Window: win,
		Input:  input.New(),
		Log:    logger.Log,
	}

	loader, closeLoader, err := newLoader(cfg)
	if err != nil {
		return fmt.Errorf("module loader: %w", err)
	}
	defer closeLoader()

	trigger := reload.NewTrigger(reload.DefaultSettle)
	defer trigger.Close()
	trigger.WatchSignals(syscall.SIGHUP)
	if watchPlugin(cfg) {
		if err := trigger.WatchFile(cfg.Reload.Plugin); err != nil {
			logger.Warn("cannot watch plugin; use F5 or SIGHUP to reload",
				zap.String("plugin", cfg.Reload.Plugin), zap.Error(err))
		}
	}

	host, err := reload.NewHost(loader, env, trigger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchPlugin reports whether plugin rewrites should trigger a reload. Only
// an enabled plugin build is watched.
func watchPlugin(cfg *config.Config) bool {
	return cfg.Reload.Enabled && cfg.Reload.Watch && cfg.Reload.Plugin != ""
}
