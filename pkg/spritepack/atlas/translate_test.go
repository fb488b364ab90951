package atlas

import (
	"testing"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
	"github.com/ukaji3/spritepack-go/pkg/spritepack/packer"
)

var twoRows = []Item{
	{Name: "a", Width: 5, Height: 10},
	{Name: "b", Width: 7, Height: 6},
	{Name: "c", Width: 9, Height: 8},
	{Name: "d", Width: 3, Height: 4},
}

func TestRowHeights(t *testing.T) {
	tests := []struct {
		columns  int
		expected []int
	}{
		{1, []int{10, 6, 8, 4}},
		{2, []int{10, 8}},
		{3, []int{10, 4}},
		{10, []int{10}},
	}

	for _, tt := range tests {
		got := RowHeights(twoRows, tt.columns)
		if len(got) != len(tt.expected) {
			t.Errorf("RowHeights(%d) = %v, expected %v", tt.columns, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("RowHeights(%d) = %v, expected %v", tt.columns, got, tt.expected)
				break
			}
		}
	}

	if got := RowHeights(nil, 2); len(got) != 0 {
		t.Errorf("RowHeights(nil) = %v, expected none", got)
	}
}

func TestTranslateTwoRows(t *testing.T) {
	const sheetHeight = 32
	entries := Translate(twoRows, 2, 2, sheetHeight)

	expected := []models.AtlasEntry{
		{Name: "a", Rect: models.Rect{X: 2, Y: 20, W: 5, H: 10}},
		{Name: "b", Rect: models.Rect{X: 9, Y: 24, W: 7, H: 6}},
		{Name: "c", Rect: models.Rect{X: 2, Y: 10, W: 9, H: 8}},
		{Name: "d", Rect: models.Rect{X: 13, Y: 14, W: 3, H: 4}},
	}
	if len(entries) != len(expected) {
		t.Fatalf("Expected %d entries, got %d", len(expected), len(entries))
	}
	for i := range expected {
		if entries[i] != expected[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, entries[i], expected[i])
		}
	}

	// second row sits below the first row and three paddings in total
	rowTop := sheetHeight - 10 - 2 - 8 - 2
	for _, e := range entries[2:] {
		diff := 8 - e.Rect.H
		if e.Rect.Y-diff != rowTop {
			t.Errorf("%s: row base %d, expected %d", e.Name, e.Rect.Y-diff, rowTop)
		}
	}
}

// Translated rectangles must land exactly where the composer put the
// sprites once Y is flipped.
func TestTranslateMatchesLayout(t *testing.T) {
	sizes := [][2]int{{12, 30}, {40, 8}, {7, 7}, {25, 19}, {3, 44}, {16, 16}, {9, 2}}
	var sprites []models.TrimmedSprite
	var items []Item
	for i, s := range sizes {
		name := string(rune('a' + i))
		sprites = append(sprites, models.TrimmedSprite{Name: name, Width: s[0], Height: s[1]})
		items = append(items, Item{Name: name, Width: s[0], Height: s[1]})
	}

	for _, columns := range []int{1, 2, 3, 5, 10} {
		placed, plan := packer.Layout(sprites, columns, packer.DefaultPadding)
		ext := packer.Extent(placed, packer.DefaultPadding)
		sheetHeight := 256
		if ext.Y > sheetHeight {
			t.Fatalf("columns %d: extent %v does not fit the test sheet", columns, ext)
		}

		heights := RowHeights(items, columns)
		if len(heights) != len(plan.RowHeights) {
			t.Fatalf("columns %d: row heights %v, layout %v", columns, heights, plan.RowHeights)
		}

		entries := Translate(items, columns, packer.DefaultPadding, sheetHeight)
		for i, e := range entries {
			p := placed[i]
			if e.Rect.X != p.X || e.Rect.W != p.W || e.Rect.H != p.H {
				t.Errorf("columns %d, %s: rect %+v, placement %+v", columns, e.Name, e.Rect, p)
			}
			if top := sheetHeight - (e.Rect.Y + e.Rect.H); top != p.Y {
				t.Errorf("columns %d, %s: flipped top %d, placement y %d", columns, e.Name, top, p.Y)
			}
		}
	}
}

func TestTranslateSheetHeightBound(t *testing.T) {
	var sprites []models.TrimmedSprite
	for _, it := range twoRows {
		sprites = append(sprites, models.TrimmedSprite{Name: it.Name, Width: it.Width, Height: it.Height})
	}
	placed, _ := packer.Layout(sprites, 2, 2)
	if ext := packer.Extent(placed, 2); ext.Y < 10+8+3*2 {
		t.Errorf("Expected extent height >= 24, got %d", ext.Y)
	}
}
