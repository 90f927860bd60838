package render

import (
	"html/template"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/classify"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/grouping"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// RenderGrid renders rows as an HTML table.
//
// In merged mode the key column is emitted once per group as a cell spanning
// the group's rows and is omitted from the group's remaining rows. A key
// column outside the header renders flat. An empty input renders the NoData
// placeholder.
func RenderGrid(rows []models.Row, header models.Header, mode GridMode) template.HTML {
	if len(rows) == 0 {
		return NoData
	}

	var b builder
	b.WriteString(`<table class="fit-table">`)

	b.WriteString(`<thead><tr>`)
	for _, col := range header {
		b.tag(`<th>`, esc(col), `</th>`)
	}
	b.WriteString(`</tr></thead>`)

	b.WriteString(`<tbody>`)
	if keyCol, ok := mode.mergedColumn(len(header)); ok {
		for _, g := range grouping.GroupByKey(rows, keyCol) {
			writeGroup(&b, g, header, keyCol)
		}
	} else {
		for _, row := range rows {
			writeRow(&b, row, header)
		}
	}
	b.WriteString(`</tbody></table>`)

	return b.html()
}

// writeGroup emits a group's rows with the key cell spanning all of them.
func writeGroup(b *builder, g models.Group, header models.Header, keyCol int) {
	for k, row := range g.Rows {
		b.WriteString(`<tr>`)
		for j := range header {
			if j == keyCol {
				if k == 0 {
					b.WriteString(`<td rowspan="`)
					b.itoa(g.Len())
					b.WriteString(`" class="merged-cell"`)
					b.WriteString(styleAttr(classify.ClassifyKeyCell(g.Key)))
					b.tag(`>`, esc(g.Key), `</td>`)
				}
				continue
			}
			writeCell(b, row.Cell(j), header[j])
		}
		b.WriteString(`</tr>`)
	}
}

func writeRow(b *builder, row models.Row, header models.Header) {
	b.WriteString(`<tr>`)
	for j := range header {
		writeCell(b, row.Cell(j), header[j])
	}
	b.WriteString(`</tr>`)
}

func writeCell(b *builder, value, column string) {
	b.tag(`<td>`, styledSpan(classify.ClassifyDataCell(value, column)), `</td>`)
}
