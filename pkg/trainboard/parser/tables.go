package parser

import "errors"

// ErrSheetMissing indicates the workbook has no worksheet with the requested title.
var ErrSheetMissing = errors.New("worksheet does not exist")

// dataExtent finds the last row and column holding a non-empty cell.
// Both are -1 when the grid has no data.
func dataExtent(rows [][]string) (lastRow, lastCol int) {
	lastRow, lastCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if rowIdx > lastRow {
					lastRow = rowIdx
				}
				if colIdx > lastCol {
					lastCol = colIdx
				}
			}
		}
	}

	return
}
