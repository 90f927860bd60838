package server

import (
	"math"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

// Query parameters read by the dashboard handler.
const (
	paramTab      = "tab"
	paramViewport = "vw"
	paramFiltered = "filtered"
)

// viewportHeaders are the client hint headers carrying the layout width.
var viewportHeaders = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// ParseViewport reads the viewport width from the vw query parameter or a
// client hint header. An absent or malformed width yields an unknown viewport.
func ParseViewport(r *http.Request) view.Viewport {
	if w, ok := parseWidth(r.URL.Query().Get(paramViewport)); ok {
		return view.Viewport{Width: w}
	}
	for _, h := range viewportHeaders {
		if w, ok := parseWidth(r.Header.Get(h)); ok {
			return view.Viewport{Width: w}
		}
	}
	return view.Viewport{}
}

func parseWidth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f <= 0 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// ParseSelection reads the filter state submitted by the page's forms.
func ParseSelection(r *http.Request) view.Selection {
	q := r.URL.Query()
	filtered := q[paramFiltered]
	sel := view.Selection{
		Tab:      q.Get(paramTab),
		Types:    q[view.ParamType],
		DaysSet:  slices.Contains(filtered, view.ParamDay),
		TypesSet: slices.Contains(filtered, view.ParamType),
	}
	days := q[view.ParamDay]
	sel.Days = days
	if len(days) > 0 {
		sel.Day = days[0]
	}
	return sel
}
