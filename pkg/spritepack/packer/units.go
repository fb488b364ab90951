// Package packer trims sprites, plans the grid and composes the sheet.
// All coordinates here are top-left origin, Y down.
package packer

// DefaultPadding is the gap between sprites, in pixels, on both axes.
const DefaultPadding = 2

// DefaultColumnFudgeDivisor scales the mean sprite area term added to the
// target row width. Changing it changes every layout.
const DefaultColumnFudgeDivisor = 1000

// DefaultColumnCount is used when not even the first sprite fits the target
// row width.
const DefaultColumnCount = 10

// DefaultSizes are the square sheet sizes, smallest first.
// The last entry is also the working canvas size.
var DefaultSizes = []int{32, 64, 128, 256, 512, 1024, 2048, 4096, 8192}
