// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Window backends.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Screenshot formats.
const (
	FormatPNG  = "png"
	FormatWebP = "webp"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Shaders    ShadersConfig    `yaml:"shaders"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds window and context settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Backend    string `yaml:"backend"` // "sdl" or "glfw"
}

// CameraConfig holds projection and camera placement settings.
// Angles are in degrees; the render loop works in radians.
type CameraConfig struct {
	FOVDegrees    float32    `yaml:"fov_degrees"`
	MinFOVDegrees float32    `yaml:"min_fov_degrees"`
	MaxFOVDegrees float32    `yaml:"max_fov_degrees"`
	ZoomStep      float32    `yaml:"zoom_step"` // radians per scroll unit
	Near          float32    `yaml:"near"`
	Far           float32    `yaml:"far"`
	Position      [3]float32 `yaml:"position"`
	Target        [3]float32 `yaml:"target"`
}

// AnimationConfig holds model animation settings.
type AnimationConfig struct {
	DegreesPerSecond float32 `yaml:"degrees_per_second"`
	// Spin applies the per-frame Y rotation to the drawn model.
	// Off by default: the rotation is computed every frame but not applied.
	Spin bool `yaml:"spin"`
}

// ShadersConfig holds shader source locations.
type ShadersConfig struct {
	Dir      string `yaml:"dir"`
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Prefix string `yaml:"prefix"`
	Format string `yaml:"format"` // "png" or "webp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the viewer's stock values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:      "cloudview",
			Width:      640,
			Height:     640,
			Fullscreen: false,
			VSync:      true,
			Backend:    BackendSDL,
		},
		Camera: CameraConfig{
			FOVDegrees:    90,
			MinFOVDegrees: 1,
			MaxFOVDegrees: 120,
			ZoomStep:      0.05,
			Near:          1,
			Far:           1000,
			Position:      [3]float32{0, 5, -10},
			Target:        [3]float32{0, 0, 0},
		},
		Animation: AnimationConfig{
			DegreesPerSecond: 22.5,
			Spin:             false,
		},
		Shaders: ShadersConfig{
			Vertex:   "vertex.glsl",
			Fragment: "fragment.glsl",
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "cloudview",
			Format: FormatPNG,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks that the settings can drive the render loop.
func (c *Config) Validate() error {
	g := c.Graphics
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, g.Width, g.Height)
	}
	if g.Backend != BackendSDL && g.Backend != BackendGLFW {
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, g.Backend)
	}

	cam := c.Camera
	if cam.Near <= 0 || cam.Near >= cam.Far {
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, cam.Near, cam.Far)
	}
	if cam.MinFOVDegrees <= 0 || cam.MaxFOVDegrees >= 180 || cam.MinFOVDegrees > cam.MaxFOVDegrees {
		return fmt.Errorf("%w: fov range [%v, %v]", ErrInvalid, cam.MinFOVDegrees, cam.MaxFOVDegrees)
	}
	if cam.FOVDegrees < cam.MinFOVDegrees || cam.FOVDegrees > cam.MaxFOVDegrees {
		return fmt.Errorf("%w: fov %v outside [%v, %v]", ErrInvalid, cam.FOVDegrees, cam.MinFOVDegrees, cam.MaxFOVDegrees)
	}

	if c.Shaders.Vertex == "" || c.Shaders.Fragment == "" {
		return fmt.Errorf("%w: shader paths must be set", ErrInvalid)
	}

	if f := c.Screenshot.Format; f != FormatPNG && f != FormatWebP {
		return fmt.Errorf("%w: unknown screenshot format %q", ErrInvalid, f)
	}
	return nil
}
