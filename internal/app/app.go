// Package app runs the viewer: it owns all state and drives the frame loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/cloudview/internal/config"
	"github.com/Faultbox/cloudview/internal/engine/camera"
	"github.com/Faultbox/cloudview/internal/engine/debug"
	"github.com/Faultbox/cloudview/internal/engine/geometry"
	"github.com/Faultbox/cloudview/internal/engine/input"
	"github.com/Faultbox/cloudview/internal/engine/renderer"
	"github.com/Faultbox/cloudview/internal/engine/shader"
	"github.com/Faultbox/cloudview/internal/engine/window"
	"github.com/Faultbox/cloudview/internal/logger"
	"github.com/Faultbox/cloudview/internal/model"
	"github.com/Faultbox/cloudview/pkg/math"
)

var yAxis = math.Vec3{X: 0, Y: 1, Z: 0}

type frameState interface {
	BeginFrame(width, height int)
	ReadPixels(width, height int) []byte
}

type program interface {
	renderer.UniformTarget
	Close()
}

type mesh interface {
	Bind()
	Draw(mode uint32, first, count int32)
	Unbind()
	Count() int32
	Close()
}

// App is the viewer state. Every field is owned by the frame thread; input
// events are applied between frames, never during one.
type App struct {
	log *zap.Logger

	window   window.Window
	renderer frameState
	program  program
	mesh     mesh

	camera    *camera.Camera
	transform math.Mat4
	fov       *input.FOV
	near, far float32
	aspect    float32

	degreesPerSecond float32
	spin             bool

	events            *input.Queue
	running           bool
	screenshotPending bool
	screenshots       *debug.ScreenshotCapture

	matrices renderer.Matrices
}

// New creates the window, GL state, shader program and model buffers.
// Any failure is fatal to startup and is returned after releasing what was built.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Backend:    cfg.Graphics.Backend,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// The renderer loads GL entry points, so it must follow the context
	r, err := renderer.New(renderer.DefaultConfig())
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	prog, err := shader.Build(shader.FileLoader{Dir: cfg.Shaders.Dir}, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("failed to build shader program: %w", err)
	}

	buf, err := geometry.New(model.FlatPositions(), model.FlatIndices())
	if err != nil {
		prog.Close()
		win.Close()
		return nil, fmt.Errorf("failed to upload model: %w", err)
	}

	lo, hi := model.Bounds()
	logger.Info("model uploaded",
		zap.String("name", model.Name),
		zap.Int("vertices", model.VertexCount()),
		zap.Int("indices", model.IndexCount()),
		zap.Any("bounds_min", lo.Array()),
		zap.Any("bounds_max", hi.Array()),
		zap.Any("center", model.Center().Array()),
	)

	return newApp(cfg, win, r, prog, buf), nil
}

func newApp(cfg *config.Config, win window.Window, r frameState, prog program, m mesh) *App {
	cam := camera.New()
	cam.Position = math.Vec3FromArray(cfg.Camera.Position)
	cam.Target = math.Vec3FromArray(cfg.Camera.Target)

	a := &App{
		log:              logger.Named("app"),
		window:           win,
		renderer:         r,
		program:          prog,
		mesh:             m,
		camera:           cam,
		transform:        math.Identity(),
		fov:              input.NewFOV(cfg.Camera.FOVDegrees, cfg.Camera.MinFOVDegrees, cfg.Camera.MaxFOVDegrees, cfg.Camera.ZoomStep),
		near:             cfg.Camera.Near,
		far:              cfg.Camera.Far,
		aspect:           float32(cfg.Graphics.Width) / float32(cfg.Graphics.Height),
		degreesPerSecond: cfg.Animation.DegreesPerSecond,
		spin:             cfg.Animation.Spin,
		events:           input.NewQueue(),
		screenshots:      debug.NewScreenshotCapture(cfg.Screenshot.Dir, cfg.Screenshot.Prefix, cfg.Screenshot.Format),
	}

	win.SetTitle(fmt.Sprintf("%s - %s", cfg.Graphics.Title, model.Name))

	// Prime the uniforms before the first frame
	a.matrices = renderer.UpdateCamera(a.camera, a.program, a.transform, a.fov.Radians(), a.aspect, a.near, a.far)
	return a
}

// Run drives frames until the window is closed or Escape is pressed.
func (a *App) Run() {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting render loop", zap.Bool("spin", a.spin))

	for a.running {
		a.window.PollEvents(a.events)
		for _, ev := range a.events.Drain() {
			a.HandleEvent(ev)
		}
		if !a.running {
			break
		}

		width, height := a.window.DrawableSize()
		a.Frame(width, height, a.window.Elapsed())

		if a.screenshotPending {
			a.screenshotPending = false
			a.captureScreenshot(width, height)
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("fov_degrees", math.Degrees(a.fov.Radians())),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
}

// Frame renders one frame at the given drawable size and elapsed seconds.
func (a *App) Frame(width, height int, elapsed float64) {
	a.renderer.BeginFrame(width, height)

	angle := math.Radians(float32(elapsed) * a.degreesPerSecond)
	rotated := a.transform.Rotate(angle, yAxis)

	// Without spin the rotation is computed and dropped, so the model stays still.
	// The shared transform itself is never written.
	world := a.transform
	if a.spin {
		world = rotated
	}

	if height > 0 {
		a.aspect = float32(width) / float32(height)
	}

	a.matrices = renderer.UpdateCamera(a.camera, a.program, world, a.fov.Radians(), a.aspect, a.near, a.far)

	a.mesh.Bind()
	a.mesh.Draw(geometry.Points, 0, a.mesh.Count())
	a.mesh.Unbind()
}

// HandleEvent applies one input event. Call it only between frames.
func (a *App) HandleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventQuit:
		a.running = false

	case input.EventScroll:
		a.fov.Scroll(ev.ScrollY)
		a.log.Debug("zoom",
			zap.Float64("delta", ev.ScrollY),
			zap.Float32("fov_degrees", math.Degrees(a.fov.Radians())),
		)

	case input.EventWindowResize:
		a.log.Debug("window resized", zap.Int("width", ev.Width), zap.Int("height", ev.Height))

	case input.EventKeyDown:
		switch ev.Key {
		case input.KeyEscape:
			a.running = false
		case input.KeyScreenshot:
			a.screenshotPending = true
		case input.KeySpin:
			a.spin = !a.spin
			a.log.Info("spin toggled", zap.Bool("spin", a.spin))
		}
	}
}

func (a *App) captureScreenshot(width, height int) {
	pixels := a.renderer.ReadPixels(width, height)
	path, err := a.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU resources and the window in reverse creation order.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.mesh != nil {
		a.mesh.Close()
	}
	if a.program != nil {
		a.program.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

// FOV returns the current field of view in radians.
func (a *App) FOV() float32 {
	return a.fov.Radians()
}

// Matrices returns the matrices uploaded by the most recent frame.
func (a *App) Matrices() renderer.Matrices {
	return a.matrices
}
