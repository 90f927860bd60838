// Package grouping partitions sheet rows into contiguous runs keyed by a column.
package grouping

import (
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// FillKeys returns the effective key of every row: the row's own key cell when
// non-blank, otherwise the most recent non-blank key above it. Rows before the
// first non-blank key get an empty string.
func FillKeys(rows []models.Row, keyCol int) []string {
	keys := make([]string, len(rows))
	last := ""
	for i, row := range rows {
		if v := row.Cell(keyCol); v != "" {
			last = v
		}
		keys[i] = last
	}
	return keys
}

// ForwardFill returns copies of rows with blank key cells replaced by their
// effective key. The input rows are not modified.
func ForwardFill(rows []models.Row, keyCol int) []models.Row {
	keys := FillKeys(rows, keyCol)
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		filled := row.Clone()
		if keyCol >= 0 && keyCol < len(filled) {
			filled[keyCol] = keys[i]
		}
		out[i] = filled
	}
	return out
}

// GroupByKey partitions rows into maximal contiguous runs of equal effective key.
// Concatenating the groups' rows reproduces the input sequence.
// An empty input yields no groups.
func GroupByKey(rows []models.Row, keyCol int) []models.Group {
	if len(rows) == 0 {
		return nil
	}

	keys := FillKeys(rows, keyCol)
	var groups []models.Group
	start := 0
	for i := 1; i <= len(rows); i++ {
		if i < len(rows) && keys[i] == keys[start] {
			continue
		}
		groups = append(groups, models.Group{Key: keys[start], Rows: rows[start:i:i]})
		start = i
	}
	return groups
}

// Keys returns the distinct effective keys in first-appearance order.
func Keys(rows []models.Row, keyCol int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, k := range FillKeys(rows, keyCol) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

// SegmentPhases splits a day group's rows at phase changes. A new segment
// carrying a phase header starts whenever the phase cell is non-blank and
// differs from the currently active phase. Blank phase cells continue the
// active segment.
func SegmentPhases(rows []models.Row, phaseCol int) []models.PhaseSegment {
	var segments []models.PhaseSegment
	active := ""
	for _, row := range rows {
		phase := strings.TrimSpace(row.Cell(phaseCol))
		if phase != "" && phase != active {
			active = phase
			segments = append(segments, models.PhaseSegment{Phase: phase})
		} else if len(segments) == 0 {
			segments = append(segments, models.PhaseSegment{})
		}
		last := &segments[len(segments)-1]
		last.Rows = append(last.Rows, row)
	}
	return segments
}
