package models

import "image"

// LayoutPlan is the grid decision made once per run.
type LayoutPlan struct {
	// ColumnCount is the number of sprites per row (always >= 1).
	ColumnCount int `json:"column_count"`
	// RowHeights holds the tallest sprite height of each row, in row order.
	RowHeights []int `json:"row_heights,omitempty"`
}

// Rows returns the number of rows in the plan.
func (p LayoutPlan) Rows() int {
	return len(p.RowHeights)
}

// Sheet is the final packed canvas.
type Sheet struct {
	// Image holds the sheet pixels.
	Image *image.NRGBA `json:"-"`
	// Width is the sheet width in pixels.
	Width int `json:"width"`
	// Height is the sheet height in pixels.
	Height int `json:"height"`
	// Content is the tight bounding box of opaque pixels before sizing.
	Content image.Rectangle `json:"-"`
	// Overflow is set when no candidate size could hold the content.
	Overflow bool `json:"overflow,omitempty"`
}
