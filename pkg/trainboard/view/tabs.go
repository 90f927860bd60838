package view

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/classify"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/grouping"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
)

// Tab labels shown in the tab strip.
const (
	LabelWeekly  = "📅 周训练计划"
	LabelLibrary = "📚 动作库"
	LabelBody    = "🏥 身体状况与禁忌"
	LabelNotes   = "📝 备注与说明"
)

// Query parameters submitted by filter controls.
const (
	ParamDay  = "day"
	ParamType = "type"
)

// DayColumn returns the training-day column, falling back to the first column.
func DayColumn(h models.Header) int {
	if i := h.Index(models.ColDay); i >= 0 {
		return i
	}
	return 0
}

// DayCards is the narrow weekly layout of a sheet.
type DayCards struct {
	// Days are the distinct non-warm-up day keys in sheet order.
	Days []string
	// Chosen is the day being shown, or empty when there are no days.
	Chosen string
	// Warmups are the warm-up groups, shown before the chosen day.
	Warmups []models.Group
	// Groups are the chosen day's groups.
	Groups []models.Group
}

// Rows counts the rows of the chosen day.
func (d DayCards) Rows() int {
	n := 0
	for _, g := range d.Groups {
		n += g.Len()
	}
	return n
}

// NarrowDays groups the weekly sheet by day and picks the day to show.
// Warm-up groups are kept wherever they sit in the sheet.
func NarrowDays(sheet models.Sheet, selected string) DayCards {
	groups := grouping.GroupByKey(sheet.Rows, DayColumn(sheet.Header))

	var d DayCards
	var days []string
	for _, g := range groups {
		if classify.IsWarmup(g.Key) {
			d.Warmups = append(d.Warmups, g)
		} else {
			days = append(days, g.Key)
		}
	}
	d.Days = Distinct(days)
	d.Chosen = ResolveSingle(d.Days, selected)
	for _, g := range groups {
		if g.Key == d.Chosen && !classify.IsWarmup(g.Key) {
			d.Groups = append(d.Groups, g)
		}
	}
	return d
}

// WeeklyTab renders the weekly plan: a merged grid filtered by a day
// multiselect on desktop, or the chosen day's cards with warm-up groups
// collapsed on narrow screens.
func WeeklyTab(sheet models.Sheet, sel Selection, mode RenderMode) models.Tab {
	tab := models.Tab{ID: models.TabWeekly, Label: LabelWeekly}
	if sheet.Empty() {
		tab.Body = render.NoData
		return tab
	}
	if mode == ModeNarrow {
		return weeklyCards(tab, sheet, sel)
	}
	keyCol := DayColumn(sheet.Header)

	filled := grouping.ForwardFill(sheet.Rows, keyCol)
	days := grouping.Keys(filled, keyCol)
	chosen := ResolveMulti(days, sel.Days, sel.DaysSet)
	rows := FilterRows(filled, keyCol, chosen)

	tab.Filter = &models.Filter{
		Param:    ParamDay,
		Label:    "选择训练日",
		Multiple: true,
		Options:  options(days, chosen),
	}
	tab.Body = render.RenderGrid(rows, sheet.Header, render.Merged(keyCol))
	tab.Caption = fmt.Sprintf("共 %d 行 · %d 个训练日", len(rows), len(chosen))
	return tab
}

func weeklyCards(tab models.Tab, sheet models.Sheet, sel Selection) models.Tab {
	cards := NarrowDays(sheet, sel.Day)

	tab.Filter = &models.Filter{
		Param:   ParamDay,
		Label:   "选择训练日",
		Options: options(cards.Days, []string{cards.Chosen}),
	}

	var body strings.Builder
	for _, g := range cards.Warmups {
		body.WriteString(string(render.RenderCollapsibleDayCard(g, sheet.Header)))
	}
	for _, g := range cards.Groups {
		body.WriteString(string(render.RenderDayCard(g, sheet.Header)))
	}
	if body.Len() == 0 {
		tab.Body = render.NoData
		return tab
	}
	tab.Body = template.HTML(body.String())
	if cards.Chosen != "" {
		tab.Caption = fmt.Sprintf("%s · 共 %d 行", cards.Chosen, cards.Rows())
	}
	return tab
}

// LibraryTab renders the exercise library as a flat grid filtered by type.
func LibraryTab(sheet models.Sheet, sel Selection) models.Tab {
	tab := models.Tab{ID: models.TabLibrary, Label: LabelLibrary}
	if sheet.Empty() {
		tab.Body = render.NoData
		return tab
	}
	rows := sheet.Rows
	if typeCol := sheet.Header.Index(models.ColLibraryType); typeCol >= 0 {
		types := Distinct(sheet.Column(typeCol))
		chosen := ResolveMulti(types, sel.Types, sel.TypesSet)
		rows = FilterRows(rows, typeCol, chosen)
		tab.Filter = &models.Filter{
			Param:    ParamType,
			Label:    "筛选动作类型",
			Multiple: true,
			Options:  options(types, chosen),
		}
	}
	tab.Body = render.RenderGrid(rows, sheet.Header, render.Flat())
	tab.Caption = fmt.Sprintf("共 %d 个动作", len(rows))
	return tab
}

// BodyTab renders body status and contraindications: a merged grid on
// desktop, category cards on narrow screens.
func BodyTab(sheet models.Sheet, mode RenderMode) models.Tab {
	tab := models.Tab{ID: models.TabBody, Label: LabelBody}
	if sheet.Empty() {
		tab.Body = render.NoData
		return tab
	}
	if mode == ModeNarrow {
		tab.Body = render.RenderCategoryCard(grouping.GroupByKey(sheet.Rows, 0), sheet.Header)
		return tab
	}
	tab.Body = render.RenderGrid(grouping.ForwardFill(sheet.Rows, 0), sheet.Header, render.Merged(0))
	return tab
}

// NotesTab renders the free-form notes sheet.
func NotesTab(sheet models.Sheet) models.Tab {
	return models.Tab{ID: models.TabNotes, Label: LabelNotes, Body: render.RenderNotes(sheet)}
}
