package spritepack

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

// square returns a size x size opaque image inside a transparent margin.
func square(size, margin int) *image.NRGBA {
	full := size + 2*margin
	img := imaging.New(full, full, color.NRGBA{})
	for y := margin; y < margin+size; y++ {
		for x := margin; x < margin+size; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	return img
}

func savePNG(t *testing.T, dir, name string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("Failed to save %s: %v", name, err)
	}
	return path
}

// smallOptions keeps the working canvas small enough for tests.
func smallOptions(t *testing.T) Options {
	t.Helper()
	opts, err := DefaultOptions().WithMaxSize(512)
	if err != nil {
		t.Fatalf("WithMaxSize failed: %v", err)
	}
	return opts
}
