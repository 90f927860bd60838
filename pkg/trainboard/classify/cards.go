package classify

import (
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// Markers recognised by the card view.
const (
	ForbiddenMarker = "严禁"
	WarningMarker   = "⚠"
	WarmupMarker    = "热身"
)

// Card colors.
const (
	DefaultAccent   = "#90a4ae"
	AlertAccent     = "#c62828"
	DefaultCategory = "#757575"
)

// AccentRules map an exercise type marker to the card's left accent color.
var AccentRules = RuleTable{
	Rules: []Rule{
		{Name: "strength", Markers: []string{"💪"}, Style: models.Style{Color: "#1565c0"}},
		{Name: "target", Markers: []string{"🎯"}, Style: models.Style{Color: "#e65100"}},
		{Name: "corrective", Markers: []string{"🔧"}, Style: models.Style{Color: "#2e7d32"}},
		{Name: "mobility", Markers: []string{"🧘"}, Style: models.Style{Color: "#6a1b9a"}},
	},
	Default: models.Style{Color: DefaultAccent},
}

// CardAccent returns the left accent color of an exercise card.
// A warning marker in the caution note overrides the type color.
func CardAccent(typeMarker, caution string) string {
	if strings.Contains(caution, WarningMarker) {
		return AlertAccent
	}
	return AccentRules.Classify(typeMarker).Color
}

// HighIntensityTokens are searched for anywhere in the card's intensity text.
// Unlike the grid view this is substring matching, so "RPE 7" counts as high.
var HighIntensityTokens = []string{"7", "8", "9"}

var (
	highBadge = models.Style{Color: "#c62828", Background: "#ffebee", Weight: "600"}
	lowBadge  = models.Style{Color: "#2e7d32", Background: "#e8f5e9", Weight: "600"}
)

// IntensityBadge returns the badge style for a card's target intensity text.
func IntensityBadge(text string) models.Style {
	for _, tok := range HighIntensityTokens {
		if strings.Contains(text, tok) {
			return highBadge
		}
	}
	return lowBadge
}

// CategoryRules color the body-condition category headers in the card view.
var CategoryRules = RuleTable{
	Rules: []Rule{
		{Name: "injury", Markers: []string{"🔴"}, Style: models.Style{Color: "#c0392b"}},
		{Name: "contraindication", Markers: []string{"🚫", "⚠️"}, Style: models.Style{Color: "#e65100"}},
		{Name: "recovery", Markers: []string{"🟢"}, Style: models.Style{Color: "#2e7d32"}},
		{Name: "environment", Markers: []string{"🟡"}, Style: models.Style{Color: "#f57f17"}},
		{Name: "nutrition", Markers: []string{"🔵"}, Style: models.Style{Color: "#1565c0"}},
		{Name: "principle", Markers: []string{"📋"}, Style: models.Style{Color: "#6a1b9a"}},
	},
	Default: models.Style{Color: DefaultCategory},
}

// CategoryColor returns the header color of a body-condition category.
func CategoryColor(key string) string {
	return CategoryRules.Classify(key).Color
}

// IsForbidden reports whether an exercise name marks a strictly forbidden movement.
func IsForbidden(name string) bool {
	return strings.Contains(name, ForbiddenMarker)
}

// IsWarmup reports whether a day key names the warm-up group.
func IsWarmup(key string) bool {
	return strings.Contains(key, WarmupMarker)
}
