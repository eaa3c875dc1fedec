// Package renderer draws the editor with OpenGL: a batched 2D painter for
// the scene and the sidebar, GPU textures, and an offscreen export target.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/paintbox/internal/logger"
)

// InitGL loads the OpenGL function pointers. It must run after the window
// has made its context current.
func InitGL() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)
	return nil
}
