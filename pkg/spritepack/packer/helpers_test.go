package packer

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

var opaqueRed = color.NRGBA{R: 255, A: 255}

// newSprite returns a w x h transparent image with rect filled opaque.
func newSprite(w, h int, rect image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, rect, &image.Uniform{opaqueRed}, image.Point{}, draw.Src)
	return img
}

// solid returns a fully opaque trimmed sprite.
func solid(name string, w, h int) models.TrimmedSprite {
	return models.TrimmedSprite{
		Name:   name,
		Width:  w,
		Height: h,
		Image:  newSprite(w, h, image.Rect(0, 0, w, h)),
	}
}
