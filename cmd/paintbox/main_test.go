package main

import (
	"testing"

	"github.com/Faultbox/paintbox/internal/config"
)

func TestWatchPlugin(t *testing.T) {
	tests := []struct {
		name    string
		enabled bool
		watch   bool
		plugin  string
		want    bool
	}{
		{"defaults", false, true, "paintbox-app.so", false},
		{"enabled", true, true, "paintbox-app.so", true},
		{"watch off", true, false, "paintbox-app.so", false},
		{"no plugin", true, true, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Reload.Enabled = tt.enabled
			cfg.Reload.Watch = tt.watch
			cfg.Reload.Plugin = tt.plugin
			if got := watchPlugin(cfg); got != tt.want {
				t.Errorf("watchPlugin() = %v, want %v", got, tt.want)
			}
		})
	}
}
