package output

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/spritepack-go/pkg/spritepack/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in the workbook report.
const (
	SpritesSheet = "Sprites"
	InfoSheet    = "Info"
)

var spriteHeader = []interface{}{"Name", "X", "Y", "Width", "Height"}

// WriteXLSX saves the manifest as a workbook: one row per sprite on the
// Sprites sheet and the sheet-level values on the Info sheet.
func WriteXLSX(m models.Manifest, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SpritesSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(SpritesSheet, "A1", &spriteHeader); err != nil {
		return err
	}
	for i, e := range m.Sprites {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{e.Name, e.Rect.X, e.Rect.Y, e.Rect.W, e.Rect.H}
		if err := f.SetSheetRow(SpritesSheet, cell, &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(InfoSheet); err != nil {
		return err
	}
	info := [][]interface{}{
		{"Image", m.Image},
		{"Size", m.Size},
		{"ColumnCount", m.ColumnCount},
		{"Padding", m.Padding},
	}
	for i, row := range info {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(InfoSheet, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// ReadXLSX loads a manifest written by WriteXLSX.
func ReadXLSX(path string) (models.Manifest, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.Manifest{}, err
	}
	defer f.Close()

	var m models.Manifest

	infoRows, err := f.GetRows(InfoSheet)
	if err != nil {
		return m, err
	}
	for _, row := range infoRows {
		if len(row) < 2 {
			continue
		}
		switch row[0] {
		case "Image":
			m.Image = row[1]
		case "Size":
			m.Size, err = strconv.Atoi(row[1])
		case "ColumnCount":
			m.ColumnCount, err = strconv.Atoi(row[1])
		case "Padding":
			m.Padding, err = strconv.Atoi(row[1])
		}
		if err != nil {
			return m, fmt.Errorf("%s: %s: %w", InfoSheet, row[0], err)
		}
	}

	rows, err := f.GetRows(SpritesSheet)
	if err != nil {
		return m, err
	}
	for rowIdx, row := range rows {
		if rowIdx == 0 || len(row) == 0 {
			continue // header
		}
		if len(row) < 5 {
			return m, fmt.Errorf("%s row %d: expected 5 cells, got %d", SpritesSheet, rowIdx+1, len(row))
		}
		var vals [4]int
		for i := range vals {
			if vals[i], err = strconv.Atoi(row[i+1]); err != nil {
				return m, fmt.Errorf("%s row %d: %w", SpritesSheet, rowIdx+1, err)
			}
		}
		m.Sprites = append(m.Sprites, models.AtlasEntry{
			Name: row[0],
			Rect: models.Rect{X: vals[0], Y: vals[1], W: vals[2], H: vals[3]},
		})
	}

	return m, nil
}
