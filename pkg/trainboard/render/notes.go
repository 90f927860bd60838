package render

import (
	"html/template"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// RenderNotes renders the notes sheet as readable prose: a blank row is a
// divider, a topic without content is a section heading, and anything else
// is a bold topic followed by its content.
func RenderNotes(sheet models.Sheet) template.HTML {
	if sheet.Empty() {
		return NoData
	}

	var b builder
	b.WriteString(`<div class="notes">`)
	for _, row := range sheet.Rows {
		topic := strings.TrimSpace(row.Cell(0))
		content := strings.TrimSpace(row.Cell(1))
		switch {
		case topic == "" && content == "":
			b.WriteString(`<hr>`)
		case content == "":
			b.tag(`<h3>`, esc(topic), `</h3>`)
		default:
			b.tag(`<p><strong>`, esc(topic), `</strong>：`)
			b.tag(``, esc(content), `</p>`)
		}
	}
	b.WriteString(`</div>`)
	return b.html()
}
