package spritepack

import (
	"errors"
	"fmt"
)

// ErrNoSourceFolder indicates the source folder is missing or not a directory.
var ErrNoSourceFolder = errors.New("source folder not found")

// ErrNoImages indicates the source folder has no png files.
var ErrNoImages = errors.New("this folder contains no images")

// ErrNoValidImages indicates every image was fully transparent.
var ErrNoValidImages = errors.New("this folder contains no valid images")

// ErrUnsupportedScale indicates a scale outside SupportedScales.
var ErrUnsupportedScale = errors.New("unsupported scale")

// ErrInvalidOptions indicates inconsistent options.
var ErrInvalidOptions = errors.New("invalid options")

// ImageError represents an image that could not be read or decoded.
type ImageError struct {
	Path string
	Err  error
}

func (e *ImageError) Error() string {
	return fmt.Sprintf("failed to read image %q: %v", e.Path, e.Err)
}

func (e *ImageError) Unwrap() error {
	return e.Err
}

// NewImageError creates a new ImageError.
func NewImageError(path string, err error) *ImageError {
	return &ImageError{
		Path: path,
		Err:  err,
	}
}
