package packer

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// ChooseSize returns the smallest candidate that holds content plus padding
// on both axes. Content is assumed to be anchored near the canvas origin, so
// its far edge must also fall inside the candidate.
func ChooseSize(content image.Rectangle, sizes []int, padding int) (int, bool) {
	for _, s := range sizes {
		if content.Dx()+padding <= s && content.Dy()+padding <= s &&
			content.Max.X <= s && content.Max.Y <= s {
			return s, true
		}
	}
	return 0, false
}

// FitSheet shrinks the working canvas to the smallest acceptable square.
//
// The canvas is cut at its origin at 1:1 so placements keep their
// coordinates. When no candidate is large enough the canvas is returned
// unchanged with Overflow set.
func FitSheet(canvas *image.NRGBA, sizes []int, padding int) models.Sheet {
	cb := canvas.Bounds()
	content, _ := Bounds(canvas)

	size, ok := ChooseSize(content, sizes, padding)
	if !ok {
		return Unfitted(canvas)
	}

	if size >= cb.Dx() && size >= cb.Dy() {
		return models.Sheet{Image: canvas, Width: cb.Dx(), Height: cb.Dy(), Content: content}
	}

	sheet := imaging.Crop(canvas, image.Rect(cb.Min.X, cb.Min.Y, cb.Min.X+size, cb.Min.Y+size))

	return models.Sheet{Image: sheet, Width: size, Height: size, Content: content}
}

// Unfitted returns the working canvas as the sheet, flagged as overflowing.
func Unfitted(canvas *image.NRGBA) models.Sheet {
	content, _ := Bounds(canvas)
	return models.Sheet{
		Image:    canvas,
		Width:    canvas.Bounds().Dx(),
		Height:   canvas.Bounds().Dy(),
		Content:  content,
		Overflow: true,
	}
}

// Clipped reports whether any placement runs past a size x size canvas.
func Clipped(placed []models.PlacedSprite, size int) bool {
	for _, p := range placed {
		if p.X+p.W > size || p.Y+p.H > size {
			return true
		}
	}
	return false
}
