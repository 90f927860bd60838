// Package preview renders the dashboard in a terminal with lipgloss, using
// the same layout rules as the HTML page.
package preview

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/term"
	"github.com/mattn/go-runewidth"

	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/classify"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/grouping"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

// PixelsPerColumn converts terminal columns to an approximate viewport width.
const PixelsPerColumn = 8

// DefaultColumns is assumed when the output is not a terminal.
const DefaultColumns = 100

// minCellWidth keeps very narrow terminals readable.
const minCellWidth = 6

// TerminalColumns returns the width of w when it is a terminal, else DefaultColumns.
func TerminalColumns(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if cols, _, err := term.GetSize(f.Fd()); err == nil && cols > 0 {
			return cols
		}
	}
	return DefaultColumns
}

// ViewportForColumns maps a terminal width to a viewport.
func ViewportForColumns(cols int) view.Viewport {
	return view.Viewport{Width: cols * PixelsPerColumn}
}

// Renderer writes dashboard tabs as styled terminal text.
type Renderer struct {
	cols   int
	styled bool
}

// NewRenderer creates a renderer for a terminal cols wide. Colors are
// emitted only when styled is true.
func NewRenderer(cols int, styled bool) *Renderer {
	if cols <= 0 {
		cols = DefaultColumns
	}
	return &Renderer{cols: cols, styled: styled}
}

// IsTerminal reports whether w is a character device.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	return err == nil && fi.Mode()&os.ModeCharDevice != 0
}

func (r *Renderer) style(s models.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if !r.styled {
		return st
	}
	if s.Color != "" {
		st = st.Foreground(lipgloss.Color(s.Color))
	}
	if s.Background != "" {
		st = st.Background(lipgloss.Color(s.Background))
	}
	if s.Weight == "bold" || s.Weight == "600" || s.Weight == "700" {
		st = st.Bold(true)
	}
	return st
}

func (r *Renderer) color(c string) lipgloss.Style {
	return r.style(models.Style{Color: c})
}

// Render returns the tab for the snapshot in the layout chosen for mode.
func (r *Renderer) Render(snap *trainboard.Snapshot, tab string, sel view.Selection, mode view.RenderMode) string {
	var b strings.Builder
	switch tab {
	case models.TabLibrary:
		r.writeTitle(&b, view.LabelLibrary)
		r.writeLibrary(&b, snap.Library, sel)
	case models.TabBody:
		r.writeTitle(&b, view.LabelBody)
		if mode == view.ModeNarrow {
			r.writeCategories(&b, snap.Body)
		} else {
			r.writeGrid(&b, snap.Body.Header, grouping.ForwardFill(snap.Body.Rows, 0), 0)
		}
	case models.TabNotes:
		r.writeTitle(&b, view.LabelNotes)
		r.writeNotes(&b, snap.Notes)
	default:
		r.writeTitle(&b, view.LabelWeekly)
		r.writeWeekly(&b, snap.Weekly, sel, mode)
	}
	return b.String()
}

func (r *Renderer) writeTitle(b *strings.Builder, title string) {
	b.WriteString(r.style(models.Style{Weight: "bold"}).Render(title))
	b.WriteString("\n\n")
}

func (r *Renderer) writeNoData(b *strings.Builder) {
	b.WriteString("无数据\n")
}

func (r *Renderer) writeWeekly(b *strings.Builder, sheet models.Sheet, sel view.Selection, mode view.RenderMode) {
	if sheet.Empty() {
		r.writeNoData(b)
		return
	}
	if mode == view.ModeNarrow {
		cards := view.NarrowDays(sheet, sel.Day)
		for _, g := range append(cards.Warmups, cards.Groups...) {
			b.WriteString(r.DayCard(g, sheet.Header))
			b.WriteString("\n")
		}
		return
	}

	keyCol := view.DayColumn(sheet.Header)
	filled := grouping.ForwardFill(sheet.Rows, keyCol)
	chosen := view.ResolveMulti(grouping.Keys(filled, keyCol), sel.Days, sel.DaysSet)
	r.writeGrid(b, sheet.Header, view.FilterRows(filled, keyCol, chosen), keyCol)
}

func (r *Renderer) writeLibrary(b *strings.Builder, sheet models.Sheet, sel view.Selection) {
	if sheet.Empty() {
		r.writeNoData(b)
		return
	}
	rows := sheet.Rows
	if typeCol := sheet.Header.Index(models.ColLibraryType); typeCol >= 0 {
		chosen := view.ResolveMulti(view.Distinct(sheet.Column(typeCol)), sel.Types, sel.TypesSet)
		rows = view.FilterRows(rows, typeCol, chosen)
	}
	r.writeGrid(b, sheet.Header, rows, -1)
}

// writeGrid renders rows as a table. When keyCol is non-negative the key is
// shown only on the first row of each contiguous group.
func (r *Renderer) writeGrid(b *strings.Builder, header models.Header, rows []models.Row, keyCol int) {
	if len(rows) == 0 {
		r.writeNoData(b)
		return
	}

	cellWidth := max(minCellWidth, (r.cols-len(header)-1)/max(len(header), 1)-2)
	var data [][]string
	var styles [][]lipgloss.Style
	add := func(row models.Row, showKey bool, key string) {
		cells := make([]string, len(header))
		st := make([]lipgloss.Style, len(header))
		for j := range header {
			switch {
			case j == keyCol && showKey:
				cells[j] = key
				st[j] = r.style(classify.ClassifyKeyCell(key))
			case j == keyCol:
				st[j] = lipgloss.NewStyle()
			default:
				c := classify.ClassifyDataCell(row.Cell(j), header[j])
				cells[j] = c.Text
				st[j] = r.style(c.Style)
			}
			cells[j] = runewidth.Truncate(cells[j], cellWidth, "…")
		}
		data = append(data, cells)
		styles = append(styles, st)
	}

	if keyCol >= 0 {
		for _, g := range grouping.GroupByKey(rows, keyCol) {
			for k, row := range g.Rows {
				add(row, k == 0, g.Key)
			}
		}
	} else {
		for _, row := range rows {
			add(row, false, "")
		}
	}

	headerStyle := r.style(models.Style{Weight: "bold"})
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(header...).
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return styles[row][col].Padding(0, 1)
		})
	b.WriteString(t.String())
	b.WriteString("\n")
}

// DayCard renders one training day as a bordered box of numbered exercises.
func (r *Renderer) DayCard(day models.Group, header models.Header) string {
	var lines []string
	lines = append(lines, r.style(classify.ClassifyKeyCell(day.Key)).Bold(r.styled).Render(day.Key))

	ordinal := 0
	for _, seg := range grouping.SegmentPhases(day.Rows, header.Index(models.ColPhase)) {
		if seg.Phase != "" {
			lines = append(lines, "── "+seg.Phase+" ──")
		}
		for _, row := range seg.Rows {
			ex := render.ExerciseFromRow(row, header)
			switch {
			case ex.Blank():
			case ex.Forbidden():
				alert := r.color(classify.AlertAccent)
				lines = append(lines, alert.Render("🚫 "+ex.Name))
				if ex.Caution != "" {
					lines = append(lines, "   "+ex.Caution)
				}
			default:
				ordinal++
				lines = append(lines, r.exerciseLines(ex, ordinal)...)
			}
		}
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		MaxWidth(max(r.cols, 24))
	if r.styled {
		box = box.BorderForeground(lipgloss.Color(classify.CardAccent("", "")))
	}
	return box.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) exerciseLines(ex render.Exercise, ordinal int) []string {
	accent := r.color(classify.CardAccent(ex.Type, ex.Caution))
	head := accent.Render("│") + " " + runewidth.FillLeft(strconv.Itoa(ordinal), 2) + ". " + ex.Name
	if ex.Type != "" {
		head += "  " + ex.Type
	}
	lines := []string{head}

	var meta []string
	if ex.SetsReps != "" {
		meta = append(meta, ex.SetsReps)
	}
	if ex.TargetRPE != "" {
		meta = append(meta, "RPE "+r.style(classify.IntensityBadge(ex.TargetRPE)).Render(ex.TargetRPE))
	}
	if len(meta) > 0 {
		lines = append(lines, "     "+strings.Join(meta, " · "))
	}
	for _, f := range []struct{ label, value string }{
		{models.ColTempo, ex.Tempo},
		{models.ColProgression, ex.Progression},
		{models.ColCaution, ex.Caution},
	} {
		if f.value != "" {
			lines = append(lines, "     "+f.label+"："+f.value)
		}
	}
	return lines
}

func (r *Renderer) writeCategories(b *strings.Builder, sheet models.Sheet) {
	if sheet.Empty() {
		r.writeNoData(b)
		return
	}
	for _, g := range grouping.GroupByKey(sheet.Rows, 0) {
		b.WriteString(r.color(classify.CategoryColor(g.Key)).Bold(r.styled).Render("▍" + g.Key))
		b.WriteString("\n")
		for _, row := range g.Rows {
			b.WriteString("  • ")
			b.WriteString(row.Cell(1))
			if detail := row.Cell(2); detail != "" {
				b.WriteString("\n    ")
				b.WriteString(detail)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}

func (r *Renderer) writeNotes(b *strings.Builder, sheet models.Sheet) {
	if sheet.Empty() {
		r.writeNoData(b)
		return
	}
	for _, row := range sheet.Rows {
		topic := strings.TrimSpace(row.Cell(0))
		content := strings.TrimSpace(row.Cell(1))
		switch {
		case topic == "" && content == "":
			b.WriteString(strings.Repeat("─", min(r.cols, 40)))
		case content == "":
			b.WriteString(r.style(models.Style{Weight: "bold"}).Render(topic))
		default:
			b.WriteString(r.style(models.Style{Weight: "bold"}).Render(topic))
			b.WriteString("：")
			b.WriteString(content)
		}
		b.WriteString("\n")
	}
}
