// Package render turns sheets into dashboard HTML fragments.
package render

import (
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// NoData is the placeholder rendered for an empty sheet or selection.
const NoData template.HTML = `<p class="no-data">无数据</p>`

// GridMode selects between a flat grid and one with a merged key column.
type GridMode struct {
	merged bool
	keyCol int
}

// Flat renders every cell in its own row.
func Flat() GridMode {
	return GridMode{}
}

// Merged collapses contiguous equal keys in column keyCol into row-spanning cells.
func Merged(keyCol int) GridMode {
	return GridMode{merged: true, keyCol: keyCol}
}

// IsMerged reports whether the mode merges a key column.
func (m GridMode) IsMerged() bool {
	return m.merged
}

// mergedColumn returns the key column when the mode merges a column that
// exists in a header of width columns.
func (m GridMode) mergedColumn(width int) (int, bool) {
	if !m.merged || m.keyCol < 0 || m.keyCol >= width {
		return -1, false
	}
	return m.keyCol, true
}

// KeyColumn returns the merged column index, or -1 for flat grids.
func (m GridMode) KeyColumn() int {
	if !m.merged {
		return -1
	}
	return m.keyCol
}

func esc(s string) string {
	return html.EscapeString(s)
}

// styledSpan wraps text in a span carrying the style, or returns it escaped as is.
func styledSpan(c models.Styled) string {
	if c.Style.IsZero() {
		return esc(c.Text)
	}
	return `<span style="` + esc(c.Style.CSS()) + `">` + esc(c.Text) + `</span>`
}

// styleAttr returns a style attribute, or nothing for a zero style.
func styleAttr(s models.Style) string {
	if s.IsZero() {
		return ""
	}
	return ` style="` + esc(s.CSS()) + `"`
}

type builder struct {
	strings.Builder
}

func (b *builder) tag(open string, body string, close string) {
	b.WriteString(open)
	b.WriteString(body)
	b.WriteString(close)
}

func (b *builder) itoa(n int) {
	b.WriteString(strconv.Itoa(n))
}

func (b *builder) html() template.HTML {
	return template.HTML(b.String())
}
