package parser

import "testing"

func TestParseRangeReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		r1, c1    int
		r2, c2    int
		wantErr   bool
	}{
		{"'周训练计划'!$A$1:$I$60", "周训练计划", 1, 1, 60, 9, false},
		{"动作库!A1:D10", "动作库", 1, 1, 10, 4, false},
		{"B2:C3", "", 2, 2, 3, 3, false},
		{"D10:A1", "", 1, 1, 10, 4, false},
		{"A1", "", 0, 0, 0, 0, true},
		{"", "", 0, 0, 0, 0, true},
		{"Sheet!ZZ:1", "", 0, 0, 0, 0, true},
	}

	for _, tt := range tests {
		sheet, rng, err := ParseRangeReference(tt.ref)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseRangeReference(%q) expected error", tt.ref)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRangeReference(%q) unexpected error: %v", tt.ref, err)
			continue
		}
		if sheet != tt.wantSheet {
			t.Errorf("ParseRangeReference(%q) sheet = %q, expected %q", tt.ref, sheet, tt.wantSheet)
		}
		if rng.R1 != tt.r1 || rng.C1 != tt.c1 || rng.R2 != tt.r2 || rng.C2 != tt.c2 {
			t.Errorf("ParseRangeReference(%q) = %+v", tt.ref, *rng)
		}
	}
}
