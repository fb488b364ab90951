// Package atlas turns a packed grid into rectangles for atlas importers that
// use a bottom-left origin with Y pointing up, and encodes the text record
// those importers read.
//
// Nothing here depends on how the sheet was composed: the rectangles are
// rebuilt from sprite sizes, the column count and the sheet height alone.
package atlas

import "github.com/ukaji3/spritepack-go/pkg/spritepack/models"

// Item is the size of one sprite as carried in the record.
type Item struct {
	Name   string
	Width  int
	Height int
}

// RowHeights walks the items with columnCount items per row and returns the
// tallest height of every row, in row order.
func RowHeights(items []Item, columnCount int) []int {
	var heights []int
	itemIndex, tallest := 0, 0

	for _, it := range items {
		if itemIndex < columnCount {
			itemIndex++
			if it.Height > tallest {
				tallest = it.Height
			}
		} else {
			itemIndex = 1
			heights = append(heights, tallest)
			tallest = it.Height
		}
	}

	if len(items) > 0 {
		heights = append(heights, tallest)
	}
	return heights
}

// Translate returns one bottom-up rectangle per item, in item order.
//
// Rows are stacked from the top of a sheetHeight tall sheet downward, each
// taking its tallest sprite plus padding. Shorter sprites are raised by the
// difference so every sprite's top edge meets the top of its row.
func Translate(items []Item, columnCount, padding, sheetHeight int) []models.AtlasEntry {
	heights := RowHeights(items, columnCount)
	entries := make([]models.AtlasEntry, 0, len(items))

	x, y := 0, sheetHeight
	itemIndex, row, lastWidth := 0, 0, 0

	for _, it := range items {
		if itemIndex < columnCount {
			itemIndex++
			if itemIndex == 1 {
				x = padding
				y -= heights[row] + padding
			} else {
				x += lastWidth + padding
			}
		} else {
			itemIndex = 1
			row++
			x = padding
			y -= heights[row] + padding
		}

		diff := heights[row] - it.Height
		entries = append(entries, models.AtlasEntry{
			Name: it.Name,
			Rect: models.Rect{X: x, Y: y + diff, W: it.Width, H: it.Height},
		})
		lastWidth = it.Width
	}

	return entries
}
