package debug

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Faultbox/cloudview/internal/config"
)

func fixedClock() time.Time {
	return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC)
}

// twoRows returns a 1x2 bottom-up buffer: red on the bottom row, blue on top.
func twoRows() []byte {
	return []byte{
		255, 0, 0, 255, // bottom
		0, 0, 255, 255, // top
	}
}

func TestCaptureFromPixelsPNGFlips(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot", config.FormatPNG)
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if filepath.Dir(path) != dir || !strings.HasSuffix(path, ".png") {
		t.Errorf("unexpected path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Image row 0 is the top of the frame
	if r, _, b, _ := img.At(0, 0).RGBA(); r != 0 || b == 0 {
		t.Errorf("top pixel should be blue, got r=%d b=%d", r, b)
	}
	if r, _, b, _ := img.At(0, 1).RGBA(); r == 0 || b != 0 {
		t.Errorf("bottom pixel should be red, got r=%d b=%d", r, b)
	}
}

func TestCaptureFromPixelsWebP(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot", config.FormatWebP)
	sc.now = fixedClock

	path, err := sc.CaptureFromPixels(twoRows(), 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}
	if !strings.HasSuffix(path, ".webp") {
		t.Errorf("expected .webp path, got %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) < 12 || string(data[0:4]) != "RIFF" || string(data[8:12]) != "WEBP" {
		t.Errorf("output is not a RIFF/WEBP container")
	}
}

func TestCaptureFromPixelsSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "shot", config.FormatPNG)
	if _, err := sc.CaptureFromPixels(make([]byte, 10), 2, 2); err == nil {
		t.Error("expected size mismatch error")
	}
	if _, err := sc.CaptureFromPixels(nil, 0, 0); err == nil {
		t.Error("expected error for empty frame")
	}
}

func TestSaveRemovesFileOnEncodeError(t *testing.T) {
	dir := t.TempDir()
	sc := NewScreenshotCapture(dir, "shot", config.FormatPNG)
	sc.now = fixedClock

	// png rejects zero-sized images after the file is created
	path, err := sc.save(image.NewRGBA(image.Rect(0, 0, 0, 0)))
	if err == nil {
		t.Fatal("expected encode error")
	}
	if path != "" {
		t.Errorf("path = %q, want empty on failure", path)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("partial file left behind: %v", entries[0].Name())
	}
}

func TestGenerateFilename(t *testing.T) {
	sc := NewScreenshotCapture("out", "cloudview", "tiff")
	sc.now = fixedClock

	want := filepath.Join("out", "cloudview_2026-10-19_12-30-00.000.png")
	if got := sc.GenerateFilename(); got != want {
		t.Errorf("GenerateFilename() = %s, want %s", got, want)
	}
}
