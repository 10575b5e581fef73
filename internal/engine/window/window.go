// Package window creates the OpenGL window and context and feeds input events.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
	Backend    string
}

// Window is a windowing backend with a current OpenGL 4.1 core context.
// All methods must be called from the main thread.
type Window interface {
	// PollEvents pumps the backend's event loop and pushes the results to q.
	PollEvents(q *input.Queue)
	// DrawableSize returns the framebuffer size in pixels.
	DrawableSize() (int, int)
	// Elapsed returns monotonic seconds since the window was created.
	Elapsed() float64
	SwapBuffers()
	SetTitle(title string)
	Close()
}

// New creates a window using the configured backend.
func New(cfg Config) (Window, error) {
	switch cfg.Backend {
	case config.BackendSDL:
		w, err := newSDL(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	case config.BackendGLFW:
		w, err := newGLFW(cfg)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("unknown window backend %q", cfg.Backend)
	}
}
