// Package shader builds OpenGL shader programs from GLSL sources.
package shader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/cloudview/pkg/math"
)

var (
	// ErrCompile wraps shader stage compilation failures.
	ErrCompile = errors.New("shader compile failed")
	// ErrLink wraps program link failures.
	ErrLink = errors.New("program link failed")
)

// Loader returns shader source text for a path.
type Loader interface {
	Load(path string) (string, error)
}

// FileLoader reads shader sources from disk. Relative paths resolve against Dir.
type FileLoader struct {
	Dir string
}

// Load reads the file at path.
func (l FileLoader) Load(path string) (string, error) {
	if l.Dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(l.Dir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading shader source: %w", err)
	}
	return string(data), nil
}

// Program is a linked GL program with a uniform location cache.
type Program struct {
	id       uint32
	uniforms map[string]int32
}

// Build creates a program from two shader files in a fixed order: load the
// vertex source, load the fragment source, then create the program, compile
// both stages, attach, link and bind. No GL object exists if a load fails.
func Build(loader Loader, vertexPath, fragmentPath string) (*Program, error) {
	vertexSrc, err := loader.Load(vertexPath)
	if err != nil {
		return nil, fmt.Errorf("vertex shader %s: %w", vertexPath, err)
	}
	fragmentSrc, err := loader.Load(fragmentPath)
	if err != nil {
		return nil, fmt.Errorf("fragment shader %s: %w", fragmentPath, err)
	}

	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	p := &Program{
		id:       id,
		uniforms: make(map[string]int32),
	}
	p.Bind()
	return p, nil
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	program := gl.CreateProgram()

	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteProgram(program)
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrLink, gl.GoStr(&log[0]))
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %w: %s", name, ErrCompile, gl.GoStr(&log[0]))
	}

	return shader, nil
}

// Bind makes the program current.
func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

// Uniform returns the location of a named uniform. ok is false when the
// program does not declare it (or the compiler optimized it away).
func (p *Program) Uniform(name string) (loc int32, ok bool) {
	if loc, cached := p.uniforms[name]; cached {
		return loc, loc >= 0
	}
	loc = gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc, loc >= 0
}

// SetMat4 uploads a matrix to a named uniform of the bound program.
// It reports whether the uniform exists; a missing uniform is not an error.
func (p *Program) SetMat4(name string, m math.Mat4) bool {
	loc, ok := p.Uniform(name)
	if !ok {
		return false
	}
	gl.UniformMatrix4fv(loc, 1, false, m.Ptr())
	return true
}

// Close deletes the program.
func (p *Program) Close() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
