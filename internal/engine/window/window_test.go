package window

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/cloudview/internal/engine/input"
)

func TestNewUnknownBackend(t *testing.T) {
	w, err := New(Config{Backend: "wayland-direct"})
	if err == nil {
		w.Close()
		t.Fatal("expected error for unknown backend")
	}
}

func TestKeyMapping(t *testing.T) {
	sdlTests := map[sdl.Scancode]input.Key{
		sdl.SCANCODE_ESCAPE: input.KeyEscape,
		sdl.SCANCODE_F12:    input.KeyScreenshot,
		sdl.SCANCODE_SPACE:  input.KeySpin,
		sdl.SCANCODE_A:      input.KeyUnknown,
	}
	for sc, want := range sdlTests {
		if got := sdlKey(sc); got != want {
			t.Errorf("sdlKey(%v) = %v, want %v", sc, got, want)
		}
	}

	glfwTests := map[glfw.Key]input.Key{
		glfw.KeyEscape: input.KeyEscape,
		glfw.KeyF12:    input.KeyScreenshot,
		glfw.KeySpace:  input.KeySpin,
		glfw.KeyA:      input.KeyUnknown,
	}
	for k, want := range glfwTests {
		if got := glfwKey(k); got != want {
			t.Errorf("glfwKey(%v) = %v, want %v", k, got, want)
		}
	}
}

func TestGLFWCallbacksPushToPendingQueue(t *testing.T) {
	w := &glfwWindow{}
	q := input.NewQueue()

	// Callbacks outside PollEvents are dropped
	w.onScroll(nil, 0, 1)
	if q.Len() != 0 {
		t.Fatal("callback without a pending queue should not push")
	}

	w.pending = q
	w.onScroll(nil, 0, -2)
	w.onScroll(nil, 3, 0)
	w.onKey(nil, glfw.KeyF12, 0, glfw.Press, 0)
	w.onKey(nil, glfw.KeyF12, 0, glfw.Release, 0)
	w.onFramebufferSize(nil, 800, 600)

	events := q.Drain()
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %+v", events)
	}
	if events[0].Type != input.EventScroll || events[0].ScrollY != -2 {
		t.Errorf("unexpected scroll event %+v", events[0])
	}
	if events[1].Type != input.EventKeyDown || events[1].Key != input.KeyScreenshot {
		t.Errorf("unexpected key event %+v", events[1])
	}
	if events[2].Type != input.EventWindowResize || events[2].Width != 800 || events[2].Height != 600 {
		t.Errorf("unexpected resize event %+v", events[2])
	}
}

func TestNewEmptyBackendRejected(t *testing.T) {
	w, err := New(Config{})
	if err == nil {
		w.Close()
		t.Fatal("expected error for empty backend")
	}
}
