// Package classify maps cell text to visual styles.
//
// Every classifier is an ordered rule table evaluated first-match-wins, so
// precedence between overlapping markers is the declaration order of the table.
// All functions are total over arbitrary strings.
package classify

import (
	"slices"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// Rule pairs a set of markers with the style applied when any marker is present.
type Rule struct {
	// Name identifies the rule in tests and logs.
	Name string
	// Markers are substrings; the rule matches if the text contains any of them.
	Markers []string
	// Style is returned when the rule matches.
	Style models.Style
}

// Matches reports whether text contains any of the rule's markers.
func (r Rule) Matches(text string) bool {
	for _, m := range r.Markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// RuleTable is an ordered list of rules with a fallback style.
type RuleTable struct {
	Rules   []Rule
	Default models.Style
}

// Match returns the first matching rule, or false when none matches.
func (t RuleTable) Match(text string) (Rule, bool) {
	for _, r := range t.Rules {
		if r.Matches(text) {
			return r, true
		}
	}
	return Rule{}, false
}

// Classify returns the style of the first matching rule, or the default.
func (t RuleTable) Classify(text string) models.Style {
	if r, ok := t.Match(text); ok {
		return r.Style
	}
	return t.Default
}

// KeyCellRules styles merged key cells (training day, condition category).
// The second "recovery" rule is shadowed by the first one and never matches
// on its recovery marker; only its weekend marker is reachable.
var KeyCellRules = RuleTable{
	Rules: []Rule{
		{Name: "injury", Markers: []string{"伤病", "🔴"}, Style: models.Style{Background: "#fff0f0", Color: "#c0392b"}},
		{Name: "contraindication", Markers: []string{"禁忌", "🚫", "⚠️"}, Style: models.Style{Background: "#fff3e0", Color: "#e65100"}},
		{Name: "recovery", Markers: []string{"恢复", "🟢"}, Style: models.Style{Background: "#e8f5e9", Color: "#2e7d32"}},
		{Name: "environment", Markers: []string{"环境", "🟡"}, Style: models.Style{Background: "#fffde7", Color: "#f57f17"}},
		{Name: "nutrition", Markers: []string{"营养", "🔵"}, Style: models.Style{Background: "#e3f2fd", Color: "#1565c0"}},
		{Name: "principle", Markers: []string{"原则", "📋"}, Style: models.Style{Background: "#f3e5f5", Color: "#6a1b9a"}},
		{Name: "warmup", Markers: []string{"热身"}, Style: models.Style{Background: "#e0f7fa", Color: "#00695c"}},
		{Name: "weekend", Markers: []string{"恢复", "周末"}, Style: models.Style{Background: "#fce4ec", Color: "#880e4f"}},
		{Name: "day-1-5", Markers: []string{"第1天", "第5天"}, Style: models.Style{Background: "#e8eaf6", Color: "#283593"}},
		{Name: "day-2", Markers: []string{"第2天"}, Style: models.Style{Background: "#e0f2f1", Color: "#004d40"}},
		{Name: "day-3", Markers: []string{"第3天"}, Style: models.Style{Background: "#f1f8e9", Color: "#33691e"}},
		{Name: "day-4", Markers: []string{"第4天"}, Style: models.Style{Background: "#fff8e1", Color: "#ff6f00"}},
	},
	Default: models.Style{Background: "#fafafa"},
}

// ClassifyKeyCell returns the style for a merged key cell.
func ClassifyKeyCell(value string) models.Style {
	return KeyCellRules.Classify(value)
}

// DataCellRules emphasise cells carrying an exercise-category marker.
var DataCellRules = RuleTable{
	Rules: []Rule{
		{Name: "strength", Markers: []string{"💪"}, Style: models.Style{Color: "#1565c0", Weight: "600"}},
		{Name: "target", Markers: []string{"🎯"}, Style: models.Style{Color: "#e65100", Weight: "600"}},
		{Name: "corrective", Markers: []string{"🔧"}, Style: models.Style{Color: "#2e7d32", Weight: "600"}},
		{Name: "mobility", Markers: []string{"🧘"}, Style: models.Style{Color: "#6a1b9a", Weight: "600"}},
	},
}

// Exact RPE values recognised in the target intensity column of the grid view.
var (
	HighRPEValues = []string{"7-8", "8-9", "8"}
	LowRPEValues  = []string{"4-5", "4", "5", "5-6"}
)

var (
	highRPEStyle = models.Style{Color: "#c62828", Weight: "bold"}
	lowRPEStyle  = models.Style{Color: "#2e7d32"}
)

// ClassifyDataCell returns the text and style for a non-key grid cell.
// Marker rules apply to any column. Otherwise the target intensity column
// is trimmed and matched exactly against the high and low RPE sets.
func ClassifyDataCell(value, columnName string) models.Styled {
	if r, ok := DataCellRules.Match(value); ok {
		return models.Styled{Text: value, Style: r.Style}
	}
	if columnName == models.ColTargetRPE {
		trimmed := strings.TrimSpace(value)
		switch {
		case slices.Contains(HighRPEValues, trimmed):
			return models.Styled{Text: trimmed, Style: highRPEStyle}
		case slices.Contains(LowRPEValues, trimmed):
			return models.Styled{Text: trimmed, Style: lowRPEStyle}
		}
		return models.Styled{Text: trimmed}
	}
	return models.Styled{Text: value}
}
