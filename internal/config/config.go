// Package config handles editor configuration loading and management.
package config

// Config holds all editor settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Editor  EditorConfig  `yaml:"editor"`
	Export  ExportConfig  `yaml:"export"`
	Reload  ReloadConfig  `yaml:"reload"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// EditorConfig holds canvas interaction constants.
type EditorConfig struct {
	ResizeHitboxSize float32 `yaml:"resize_hitbox_size" split_words:"true"` // screen pixels, divided by zoom
	HoverOutline     float32 `yaml:"hover_outline" split_words:"true"`
	CanvasBorder     float32 `yaml:"canvas_border" split_words:"true"`
	ZoomWheelDivisor float32 `yaml:"zoom_wheel_divisor" split_words:"true"`
	MinZoom          float32 `yaml:"min_zoom" split_words:"true"`
	CanvasWidth      float32 `yaml:"canvas_width" split_words:"true"`
	CanvasHeight     float32 `yaml:"canvas_height" split_words:"true"`
	StrokeWeight     float32 `yaml:"stroke_weight" split_words:"true"`
	StrokeWeightMin  float32 `yaml:"stroke_weight_min" split_words:"true"`
	StrokeWeightMax  float32 `yaml:"stroke_weight_max" split_words:"true"`
	Color            string  `yaml:"color"` // #rrggbb or #rrggbbaa
	SidebarWidth     int     `yaml:"sidebar_width" split_words:"true"`
	StartImage       string  `yaml:"start_image" split_words:"true"`
}

// ExportConfig holds flatten/export settings.
type ExportConfig struct {
	DefaultFormat string `yaml:"default_format" split_words:"true"`
	JPEGQuality   int    `yaml:"jpeg_quality" envconfig:"JPEG_QUALITY"`
}

// ReloadConfig holds live code reload settings.
type ReloadConfig struct {
	Enabled bool   `yaml:"enabled"`
	Plugin  string `yaml:"plugin"`
	Watch   bool   `yaml:"watch"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file" split_words:"true"`
	Console    bool   `yaml:"console"`
	MaxSizeMB  int    `yaml:"max_size_mb" envconfig:"MAX_SIZE_MB"`
	MaxBackups int    `yaml:"max_backups" split_words:"true"`
	MaxAgeDays int    `yaml:"max_age_days" split_words:"true"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1600,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
		},
		Editor: EditorConfig{
			ResizeHitboxSize: 30,
			HoverOutline:     5,
			CanvasBorder:     5,
			ZoomWheelDivisor: 20,
			MinZoom:          0.01,
			CanvasWidth:      1920,
			CanvasHeight:     1080,
			StrokeWeight:     5,
			StrokeWeightMin:  1,
			StrokeWeightMax:  20,
			Color:            "#ffffff",
			SidebarWidth:     320,
		},
		Export: ExportConfig{
			DefaultFormat: "png",
			JPEGQuality:   95,
		},
		Reload: ReloadConfig{
			Enabled: false,
			Plugin:  "paintbox-app.so",
			Watch:   true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			Console:    true,
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}
