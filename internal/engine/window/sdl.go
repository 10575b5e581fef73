package window

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/logger"
)

// sdlWindow wraps an SDL2 window and OpenGL context.
type sdlWindow struct {
	config    Config
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	startCounter uint64
	frequency    float64
}

func newSDL(cfg Config) (*sdlWindow, error) {
	log := logger.Named("window")
	w := &sdlWindow{config: cfg}

	log.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	// Attributes must be set before the window is created.
	// 4.1 core is the newest profile macOS provides.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE | sdl.WINDOW_ALLOW_HIGHDPI)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	w.glContext, err = w.sdlWindow.GLCreateContext()
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_GL_CreateContext failed: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Warn("failed to set swap interval", zap.Int("interval", interval), zap.Error(err))
	}

	w.frequency = float64(sdl.GetPerformanceFrequency())
	w.startCounter = sdl.GetPerformanceCounter()

	log.Info("window created",
		zap.String("backend", config.BackendSDL),
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return w, nil
}

// PollEvents drains the SDL queue into q.
func (w *sdlWindow) PollEvents(q *input.Queue) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				width, height := w.DrawableSize()
				q.Push(input.Event{Type: input.EventWindowResize, Width: width, Height: height})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				if key := sdlKey(e.Keysym.Scancode); key != input.KeyUnknown {
					q.Push(input.Event{Type: input.EventKeyDown, Key: key})
				}
			}

		case *sdl.MouseWheelEvent:
			dy := float64(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				dy = -dy
			}
			if dy != 0 {
				q.Push(input.Event{Type: input.EventScroll, ScrollY: dy})
			}
		}
	}
}

func sdlKey(sc sdl.Scancode) input.Key {
	switch sc {
	case sdl.SCANCODE_ESCAPE:
		return input.KeyEscape
	case sdl.SCANCODE_F12:
		return input.KeyScreenshot
	case sdl.SCANCODE_SPACE:
		return input.KeySpin
	default:
		return input.KeyUnknown
	}
}

// DrawableSize returns the GL drawable size, which differs from the window
// size on high-DPI displays.
func (w *sdlWindow) DrawableSize() (int, int) {
	width, height := w.sdlWindow.GLGetDrawableSize()
	return int(width), int(height)
}

// Elapsed returns seconds since window creation from the performance counter.
func (w *sdlWindow) Elapsed() float64 {
	return float64(sdl.GetPerformanceCounter()-w.startCounter) / w.frequency
}

// SwapBuffers swaps the OpenGL buffers.
func (w *sdlWindow) SwapBuffers() {
	w.sdlWindow.GLSwap()
}

// SetTitle sets the window title.
func (w *sdlWindow) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Close destroys the window and shuts SDL down.
func (w *sdlWindow) Close() {
	logger.Named("window").Info("closing window", zap.String("backend", config.BackendSDL))

	if w.glContext != nil {
		sdl.GLDeleteContext(w.glContext)
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}
