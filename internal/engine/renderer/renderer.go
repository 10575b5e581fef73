// Package renderer holds per-frame OpenGL state and the camera uniform update.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	ClearColor [4]float32
	PointSize  float32
}

// DefaultConfig returns a dark background and single-pixel points.
func DefaultConfig() Config {
	return Config{
		ClearColor: [4]float32{0.1, 0.1, 0.15, 1.0},
		PointSize:  1,
	}
}

// Renderer owns global GL state for the viewer.
// IMPORTANT: New must be called after the GL context is current.
type Renderer struct {
	config Config
	log    *zap.Logger

	width, height int
}

// New loads GL function pointers and applies the static state.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.PROGRAM_POINT_SIZE)
	gl.PointSize(cfg.PointSize)

	return r, nil
}

// BeginFrame sets the viewport, clears, and enables culling and depth writes.
// The enables are repeated every frame; they are idempotent.
func (r *Renderer) BeginFrame(width, height int) {
	if width != r.width || height != r.height {
		r.width, r.height = width, height
		gl.Viewport(0, 0, int32(width), int32(height))
		r.log.Debug("viewport resized", zap.Int("width", width), zap.Int("height", height))
	}

	gl.Enable(gl.CULL_FACE)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthMask(true)

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// ReadPixels reads the back buffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
