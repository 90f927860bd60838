// Package view chooses between the grid and card layouts and applies the
// user's filter selection before rendering each tab.
package view

// NarrowThreshold is the viewport width, in pixels, below which cards are used.
const NarrowThreshold = 768

// RenderMode is the layout chosen for one render pass.
type RenderMode int

const (
	// ModeDesktop renders tabular grids with merged key cells.
	ModeDesktop RenderMode = iota
	// ModeNarrow renders per-row cards.
	ModeNarrow
)

// String returns the mode name used in markup and logs.
func (m RenderMode) String() string {
	switch m {
	case ModeDesktop:
		return "desktop"
	case ModeNarrow:
		return "narrow"
	default:
		return "unknown"
	}
}

// Viewport is the display width reported by the host. A non-positive width
// means the width is unknown.
type Viewport struct {
	Width int
}

// Known reports whether a width was reported.
func (v Viewport) Known() bool {
	return v.Width > 0
}

// IsNarrow reports whether the viewport is below the narrow threshold.
// An unknown width is treated as desktop.
func (v Viewport) IsNarrow() bool {
	return v.Known() && v.Width < NarrowThreshold
}

// SelectView maps the narrow-viewport signal to a render mode.
func SelectView(viewportIsNarrow bool) RenderMode {
	if viewportIsNarrow {
		return ModeNarrow
	}
	return ModeDesktop
}

// ModeFor selects the render mode for a viewport.
func ModeFor(v Viewport) RenderMode {
	return SelectView(v.IsNarrow())
}
