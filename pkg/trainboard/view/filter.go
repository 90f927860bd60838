package view

import (
	"slices"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// Selection is the filter state owned by the UI layer for one render.
type Selection struct {
	// Tab is the active tab id.
	Tab string
	// Days are the desktop multiselect training days.
	Days []string
	// Types are the selected exercise library types.
	Types []string
	// Day is the single training day chosen in narrow mode.
	Day string
	// DaysSet and TypesSet mark a submitted filter, in which case an empty
	// list selects nothing instead of everything.
	DaysSet  bool
	TypesSet bool
}

// FilterRows keeps rows whose key column value is in keep, preserving order.
func FilterRows(rows []models.Row, keyCol int, keep []string) []models.Row {
	set := make(map[string]bool, len(keep))
	for _, k := range keep {
		set[k] = true
	}
	out := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if set[row.Cell(keyCol)] {
			out = append(out, row)
		}
	}
	return out
}

// ResolveMulti returns the effective multiselect choice: every option when
// nothing was submitted, otherwise the submitted values that are valid options,
// in option order.
func ResolveMulti(options, selected []string, explicit bool) []string {
	if !explicit && len(selected) == 0 {
		return slices.Clone(options)
	}
	var out []string
	for _, o := range options {
		if slices.Contains(selected, o) {
			out = append(out, o)
		}
	}
	return out
}

// ResolveSingle returns selected when it is a valid option, else the first option.
func ResolveSingle(options []string, selected string) string {
	if slices.Contains(options, selected) {
		return selected
	}
	if len(options) == 0 {
		return ""
	}
	return options[0]
}

// Distinct returns the distinct values in first-appearance order.
func Distinct(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func options(values, selected []string) []models.FilterOption {
	out := make([]models.FilterOption, len(values))
	for i, v := range values {
		out[i] = models.FilterOption{Value: v, Selected: slices.Contains(selected, v)}
	}
	return out
}
