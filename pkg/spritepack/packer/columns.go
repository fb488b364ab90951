package packer

import (
	"math"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
)

// TargetRowWidth is the row width the column heuristic aims for:
// sqrt(total area) plus the mean area divided by fudgeDivisor.
// Integer arithmetic throughout, matching existing importers.
func TargetRowWidth(sprites []models.TrimmedSprite, fudgeDivisor int) int {
	if len(sprites) == 0 {
		return 0
	}
	area := 0
	for _, s := range sprites {
		area += s.Width * s.Height
	}
	return int(math.Sqrt(float64(area))) + (area/len(sprites))/fudgeDivisor
}

// ColumnCount decides how many sprites go in every row.
//
// Sprites are walked in input order and counted while their running width
// stays below the target; a sprite that would reach it is skipped and the walk
// goes on with the next one. This is an approximation, not a bin packer.
// When nothing is counted the result is fallback.
func ColumnCount(sprites []models.TrimmedSprite, fudgeDivisor, fallback int) int {
	target := TargetRowWidth(sprites, fudgeDivisor)

	count, width := 0, 0
	for _, s := range sprites {
		if width+s.Width < target {
			count++
			width += s.Width
		}
	}

	if count == 0 {
		return fallback
	}
	return count
}
