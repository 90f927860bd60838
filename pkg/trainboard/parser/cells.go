// Package parser reads worksheets into dashboard sheets.
package parser

import (
	"fmt"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/xuri/excelize/v2"
)

// LoadSheet reads a worksheet from an open workbook.
// When rng is non-nil only the cells inside it are read.
func LoadSheet(f *excelize.File, sheetName string, rng *models.CellRange) (models.Sheet, error) {
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}
	if idx < 0 {
		return models.Sheet{}, fmt.Errorf("sheet %q: %w", sheetName, ErrSheetMissing)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return models.Sheet{}, err
	}
	if rng != nil {
		rows = rng.Slice(rows)
	}

	return BuildSheet(sheetName, rows), nil
}

// BuildSheet turns a raw value grid into a Sheet, treating the first row as the header.
// Grids with fewer than two rows yield an empty Sheet. Ragged rows are padded
// to a rectangular shape and trailing blank rows are dropped.
func BuildSheet(name string, values [][]string) models.Sheet {
	lastRow, lastCol := dataExtent(values)
	if lastRow < 1 {
		return models.Sheet{Name: name}
	}

	width := lastCol + 1
	if len(values[0]) > width {
		width = len(values[0])
	}

	sheet := models.Sheet{
		Name:   name,
		Header: models.Header(padRow(values[0], width)),
	}
	for _, row := range values[1 : lastRow+1] {
		sheet.Rows = append(sheet.Rows, models.Row(padRow(row, width)))
	}
	return sheet
}

// padRow copies row into a slice of exactly width cells.
func padRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}
