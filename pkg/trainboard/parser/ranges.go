package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/xuri/excelize/v2"
)

// ParseRangeReference parses a range reference string.
// Accepted forms: 'Sheet'!$A$1:$D$10, Sheet!A1:D10 and A1:D10.
// The sheet name is empty when the reference does not carry one.
func ParseRangeReference(ref string) (string, *models.CellRange, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", nil, fmt.Errorf("empty range reference")
	}

	var sheetName string
	rangeStr := ref
	// Split by ! to separate sheet name and range
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheetName = strings.Trim(ref[:idx], "'")
		rangeStr = ref[idx+1:]
	}

	area, err := parseRange(rangeStr)
	if err != nil {
		return "", nil, fmt.Errorf("range %q: %w", ref, err)
	}
	return sheetName, area, nil
}

// parseRange parses a range string like $A$1:$D$10.
func parseRange(rangeStr string) (*models.CellRange, error) {
	rangeStr = strings.ReplaceAll(rangeStr, "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("expected START:END")
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return nil, err
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return nil, err
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
