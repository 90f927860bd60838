package models

// CellRange represents cell coordinate bounds restricting what is read from a sheet.
type CellRange struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Slice returns the part of a ragged value grid that falls inside the range.
func (r CellRange) Slice(values [][]string) [][]string {
	var out [][]string
	for rowIdx := r.R1 - 1; rowIdx < r.R2 && rowIdx < len(values); rowIdx++ {
		if rowIdx < 0 {
			continue
		}
		row := values[rowIdx]
		var cells []string
		for colIdx := r.C1 - 1; colIdx < r.C2 && colIdx < len(row); colIdx++ {
			if colIdx < 0 {
				continue
			}
			cells = append(cells, row[colIdx])
		}
		out = append(out, cells)
	}
	return out
}
