// Package models defines data structures for sprite sheet packing.
package models

import "image"

// SourceImage is a decoded input image.
type SourceImage struct {
	// Name is the sprite identifier (file name without extension).
	Name string `json:"name"`
	// Path is the file the image was read from (empty for in-memory images).
	Path string `json:"path,omitempty"`
	// Image holds the pixels, including the alpha channel.
	Image image.Image `json:"-"`
}

// Width returns the source width in pixels.
func (s SourceImage) Width() int {
	return s.Image.Bounds().Dx()
}

// Height returns the source height in pixels.
func (s SourceImage) Height() int {
	return s.Image.Bounds().Dy()
}

// TrimmedSprite is a source image cropped to its opaque content and scaled.
type TrimmedSprite struct {
	// Name is the sprite identifier.
	Name string `json:"name"`
	// Width is the post-crop, post-scale width (always > 0).
	Width int `json:"w"`
	// Height is the post-crop, post-scale height (always > 0).
	Height int `json:"h"`
	// Source is the crop rectangle within the original image.
	Source image.Rectangle `json:"-"`
	// Image holds the trimmed pixels, origin at (0, 0).
	Image *image.NRGBA `json:"-"`
}

// PlacedSprite is a trimmed sprite positioned on the working canvas.
// Coordinates are top-left origin, Y down.
type PlacedSprite struct {
	// Name is the sprite identifier.
	Name string `json:"name"`
	// X is the left edge in pixels.
	X int `json:"x"`
	// Y is the top edge in pixels.
	Y int `json:"y"`
	// W is the width in pixels.
	W int `json:"w"`
	// H is the height in pixels.
	H int `json:"h"`
	// Row is the zero-based grid row.
	Row int `json:"row"`
	// Column is the zero-based index within the row.
	Column int `json:"column"`
}

// Bounds returns the placement as an image rectangle.
func (p PlacedSprite) Bounds() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.W, p.Y+p.H)
}
