package models

import "strings"

// Style is a visual treatment for a cell, badge or card accent.
type Style struct {
	// Color is the CSS foreground color.
	Color string `json:"color,omitempty"`
	// Background is the CSS background color.
	Background string `json:"background,omitempty"`
	// Weight is the CSS font-weight ("600", "bold"); empty means normal.
	Weight string `json:"weight,omitempty"`
}

// IsZero reports whether the style carries no treatment.
func (s Style) IsZero() bool {
	return s == Style{}
}

// CSS renders the style as an inline CSS declaration list.
func (s Style) CSS() string {
	var parts []string
	if s.Background != "" {
		parts = append(parts, "background-color:"+s.Background+";")
	}
	if s.Color != "" {
		parts = append(parts, "color:"+s.Color+";")
	}
	if s.Weight != "" {
		parts = append(parts, "font-weight:"+s.Weight+";")
	}
	return strings.Join(parts, " ")
}

// Styled is cell text together with the style it should be shown in.
type Styled struct {
	Text  string `json:"text"`
	Style Style  `json:"style"`
}
