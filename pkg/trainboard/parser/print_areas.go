package parser

import (
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// PrintArea returns the first print area defined for the sheet, or nil when
// the sheet has none. Multi-area definitions keep only their first range.
func PrintArea(f *excelize.File, sheetName string) *models.CellRange {
	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		first, _, _ := strings.Cut(dn.RefersTo, ",")
		name, rng, err := ParseRangeReference(first)
		if err != nil {
			continue
		}
		if name == sheetName || (name == "" && dn.Scope == sheetName) {
			return rng
		}
	}
	return nil
}
