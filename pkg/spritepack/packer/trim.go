package packer

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// Bounds returns the smallest rectangle holding every pixel with non-zero
// alpha. The second result is false when the image is fully transparent.
//
// The four scans each start from the edge found by the previous one, so
// most of the image is never visited once the content has been located.
func Bounds(img *image.NRGBA) (image.Rectangle, bool) {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}, false
	}
	opaque := func(x, y int) bool {
		return img.Pix[img.PixOffset(x, y)+3] != 0
	}

	xMin, yMin, xMax, yMax := -1, -1, -1, -1

left:
	for x := b.Min.X; x < b.Max.X; x++ {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			if opaque(x, y) {
				xMin = x
				break left
			}
		}
	}
	if xMin < 0 {
		return image.Rectangle{}, false
	}

top:
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := xMin; x < b.Max.X; x++ {
			if opaque(x, y) {
				yMin = y
				break top
			}
		}
	}

right:
	for x := b.Max.X - 1; x >= xMin; x-- {
		for y := yMin; y < b.Max.Y; y++ {
			if opaque(x, y) {
				xMax = x
				break right
			}
		}
	}

bottom:
	for y := b.Max.Y - 1; y >= yMin; y-- {
		for x := xMin; x <= xMax; x++ {
			if opaque(x, y) {
				yMax = y
				break bottom
			}
		}
	}

	return image.Rect(xMin, yMin, xMax+1, yMax+1), true
}

// ScaledSize returns the size a w x h crop becomes at the given scale.
// Halves round to even.
func ScaledSize(w, h int, scale float64) (int, int) {
	return int(math.RoundToEven(float64(w) * scale)), int(math.RoundToEven(float64(h) * scale))
}

// Trim crops src to its opaque content and resamples it by scale.
// It returns false when the image is fully transparent or scales to nothing;
// such sprites are left out of the sheet.
func Trim(src models.SourceImage, scale float64) (models.TrimmedSprite, bool) {
	img := toNRGBA(src.Image)
	r, ok := Bounds(img)
	if !ok {
		return models.TrimmedSprite{}, false
	}

	w, h := ScaledSize(r.Dx(), r.Dy(), scale)
	if w <= 0 || h <= 0 {
		return models.TrimmedSprite{}, false
	}

	cropped := imaging.Crop(img, r)
	if w != r.Dx() || h != r.Dy() {
		cropped = imaging.Resize(cropped, w, h, imaging.CatmullRom)
	}

	return models.TrimmedSprite{
		Name:   src.Name,
		Width:  w,
		Height: h,
		Source: r,
		Image:  cropped,
	}, true
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}
