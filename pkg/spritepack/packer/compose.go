package packer

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// Layout assigns each sprite a grid cell, row-major in input order, with
// columnCount sprites per row. Sprites are top-aligned within their row and
// the first row starts padding pixels below the top edge.
func Layout(sprites []models.TrimmedSprite, columnCount, padding int) ([]models.PlacedSprite, models.LayoutPlan) {
	placed := make([]models.PlacedSprite, 0, len(sprites))
	plan := models.LayoutPlan{ColumnCount: columnCount}

	x, y := 0, padding
	row, itemIndex, rowHeight, prevWidth := 0, 0, 0, 0

	for _, s := range sprites {
		if itemIndex < columnCount {
			itemIndex++
			if s.Height > rowHeight {
				rowHeight = s.Height
			}
			if itemIndex == 1 {
				x = padding
			} else {
				x += prevWidth + padding
			}
		} else {
			plan.RowHeights = append(plan.RowHeights, rowHeight)
			itemIndex = 1
			row++
			y += rowHeight + padding
			rowHeight = s.Height
			x = padding
		}

		placed = append(placed, models.PlacedSprite{
			Name:   s.Name,
			X:      x,
			Y:      y,
			W:      s.Width,
			H:      s.Height,
			Row:    row,
			Column: itemIndex - 1,
		})
		prevWidth = s.Width
	}

	if len(sprites) > 0 {
		plan.RowHeights = append(plan.RowHeights, rowHeight)
	}
	return placed, plan
}

// Extent returns the size of the area covered by placements, including the
// trailing padding on the right and bottom.
func Extent(placed []models.PlacedSprite, padding int) image.Point {
	var p image.Point
	for _, s := range placed {
		if r := s.X + s.W + padding; r > p.X {
			p.X = r
		}
		if b := s.Y + s.H + padding; b > p.Y {
			p.Y = b
		}
	}
	return p
}

// Compose lays the sprites out and copies them onto a transparent
// canvasSize x canvasSize canvas. Pixels are copied as-is, alpha included.
// Anything placed past the canvas edge is clipped.
func Compose(sprites []models.TrimmedSprite, columnCount, padding, canvasSize int) (*image.NRGBA, []models.PlacedSprite, models.LayoutPlan) {
	placed, plan := Layout(sprites, columnCount, padding)

	canvas := imaging.New(canvasSize, canvasSize, color.NRGBA{})
	for i, p := range placed {
		copyPixels(canvas, p.Bounds(), sprites[i].Image, sprites[i].Image.Bounds().Min)
	}

	return canvas, placed, plan
}

// copyPixels copies src into r of dst byte for byte, clipped to both images.
func copyPixels(dst *image.NRGBA, r image.Rectangle, src *image.NRGBA, sp image.Point) {
	clipped := r.Intersect(dst.Bounds())
	sp = sp.Add(clipped.Min.Sub(r.Min))
	sr := image.Rectangle{Min: sp, Max: sp.Add(clipped.Size())}.Intersect(src.Bounds())
	if sr.Empty() {
		return
	}
	clipped.Max = clipped.Min.Add(sr.Size())

	n := sr.Dx() * 4
	for y := 0; y < sr.Dy(); y++ {
		d := dst.PixOffset(clipped.Min.X, clipped.Min.Y+y)
		s := src.PixOffset(sr.Min.X, sr.Min.Y+y)
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}
