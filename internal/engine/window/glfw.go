package window

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/logger"
)

// glfwWindow wraps a GLFW window. GLFW reports input through callbacks that
// run inside glfw.PollEvents, so they append to the queue passed to PollEvents.
type glfwWindow struct {
	config  Config
	window  *glfw.Window
	pending *input.Queue
}

func newGLFW(cfg Config) (*glfwWindow, error) {
	log := logger.Named("window")

	log.Info("initializing GLFW")
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw.Init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	var monitor *glfw.Monitor
	if cfg.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("glfw.CreateWindow failed: %w", err)
	}
	win.MakeContextCurrent()

	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	w := &glfwWindow{config: cfg, window: win}
	win.SetScrollCallback(w.onScroll)
	win.SetKeyCallback(w.onKey)
	win.SetFramebufferSizeCallback(w.onFramebufferSize)

	// Elapsed counts from window creation, like the SDL backend
	glfw.SetTime(0)

	log.Info("window created",
		zap.String("backend", config.BackendGLFW),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvents runs glfw.PollEvents with q as the callback target.
func (w *glfwWindow) PollEvents(q *input.Queue) {
	w.pending = q
	glfw.PollEvents()
	w.pending = nil

	if w.window.ShouldClose() {
		q.Push(input.Event{Type: input.EventQuit})
	}
}

func (w *glfwWindow) push(e input.Event) {
	if w.pending != nil {
		w.pending.Push(e)
	}
}

func (w *glfwWindow) onScroll(_ *glfw.Window, _, yoff float64) {
	if yoff != 0 {
		w.push(input.Event{Type: input.EventScroll, ScrollY: yoff})
	}
}

func (w *glfwWindow) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}
	if k := glfwKey(key); k != input.KeyUnknown {
		w.push(input.Event{Type: input.EventKeyDown, Key: k})
	}
}

func (w *glfwWindow) onFramebufferSize(_ *glfw.Window, width, height int) {
	w.push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
}

func glfwKey(key glfw.Key) input.Key {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape
	case glfw.KeyF12:
		return input.KeyScreenshot
	case glfw.KeySpace:
		return input.KeySpin
	default:
		return input.KeyUnknown
	}
}

// DrawableSize returns the framebuffer size in pixels.
func (w *glfwWindow) DrawableSize() (int, int) {
	return w.window.GetFramebufferSize()
}

// Elapsed returns the GLFW timer.
func (w *glfwWindow) Elapsed() float64 {
	return glfw.GetTime()
}

// SwapBuffers swaps the OpenGL buffers.
func (w *glfwWindow) SwapBuffers() {
	w.window.SwapBuffers()
}

// SetTitle sets the window title.
func (w *glfwWindow) SetTitle(title string) {
	w.window.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *glfwWindow) Close() {
	logger.Named("window").Info("closing window", zap.String("backend", config.BackendGLFW))
	w.window.Destroy()
	glfw.Terminate()
}
