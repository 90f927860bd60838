package models

import "html/template"

// Tab identifiers.
const (
	TabWeekly  = "weekly"
	TabLibrary = "library"
	TabBody    = "body"
	TabNotes   = "notes"
)

// FilterOption is one choice offered by a filter control.
type FilterOption struct {
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}

// Filter describes a selection control rendered above a tab's content.
type Filter struct {
	// Param is the query parameter the control submits.
	Param string `json:"param"`
	// Label is the control caption.
	Label string `json:"label"`
	// Multiple is true for a multiselect, false for a single choice.
	Multiple bool `json:"multiple"`
	// Options are the choices in display order.
	Options []FilterOption `json:"options"`
}

// Tab is one rendered dashboard tab.
type Tab struct {
	ID      string        `json:"id"`
	Label   string        `json:"label"`
	Filter  *Filter       `json:"filter,omitempty"`
	Body    template.HTML `json:"body"`
	Caption string        `json:"caption,omitempty"`
}

// Page is a complete dashboard render.
type Page struct {
	Title     string `json:"title"`
	Caption   string `json:"caption"`
	Mode      string `json:"mode"`
	ActiveTab string `json:"active_tab"`
	// ViewportWidth is the width the page was rendered for, 0 when unknown.
	ViewportWidth int `json:"viewport_width,omitempty"`
	Tabs      []Tab  `json:"tabs"`
	// Banner is set instead of Tabs when the data source failed.
	Banner template.HTML `json:"banner,omitempty"`
}
