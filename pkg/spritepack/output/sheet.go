// Package output writes packed sheets and their manifests.
package output

import (
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

// EncodeSheet writes img to w as PNG.
func EncodeSheet(w io.Writer, img image.Image) error {
	return imaging.Encode(w, img, imaging.PNG)
}

// WriteSheet saves img as a PNG file at path.
// An existing file at path is removed first. If writing fails the partial
// file is removed, so on error nothing is left at path.
func WriteSheet(img image.Image, path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove existing %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeSheet(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
