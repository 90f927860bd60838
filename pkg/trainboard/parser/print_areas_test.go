package parser

import (
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

func TestPrintArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("动作库"); err != nil {
		t.Fatal(err)
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: "'动作库'!$A$2:$C$9,'动作库'!$E$1:$F$2",
		Scope:    "动作库",
	}); err != nil {
		t.Fatal(err)
	}

	got := PrintArea(f, "动作库")
	want := &models.CellRange{R1: 2, C1: 1, R2: 9, C2: 3}
	if got == nil || *got != *want {
		t.Errorf("PrintArea = %+v, want %+v", got, want)
	}
	if rng := PrintArea(f, "Sheet1"); rng != nil {
		t.Errorf("PrintArea(Sheet1) = %+v, want nil", rng)
	}
}
