package render

import (
	"html/template"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/classify"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/grouping"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
)

// Exercise holds the weekly-plan fields a card displays.
type Exercise struct {
	Name        string
	Type        string
	SetsReps    string
	Tempo       string
	TargetRPE   string
	Progression string
	Caution     string
	Phase       string
}

// ExerciseFromRow extracts an exercise by header lookup. Missing columns read as empty.
func ExerciseFromRow(row models.Row, header models.Header) Exercise {
	get := func(col string) string {
		return strings.TrimSpace(header.Lookup(row, col))
	}
	return Exercise{
		Name:        get(models.ColExercise),
		Type:        get(models.ColType),
		SetsReps:    get(models.ColSetsReps),
		Tempo:       get(models.ColTempo),
		TargetRPE:   get(models.ColTargetRPE),
		Progression: get(models.ColProgression),
		Caution:     get(models.ColCaution),
		Phase:       get(models.ColPhase),
	}
}

// Blank reports whether the exercise has no displayable content.
func (e Exercise) Blank() bool {
	return e.Name == "" && e.Type == "" && e.SetsReps == "" && e.Tempo == "" &&
		e.TargetRPE == "" && e.Progression == "" && e.Caution == ""
}

// Forbidden reports whether the row is a strictly forbidden movement.
func (e Exercise) Forbidden() bool {
	return classify.IsForbidden(e.Name)
}

// RenderDayCard renders one training day as a stack of exercise cards.
//
// Phase headers are emitted when the phase column changes to a new non-blank
// value. Forbidden movements become warning banners and take no ordinal.
// Blank rows are skipped.
func RenderDayCard(day models.Group, header models.Header) template.HTML {
	var b builder
	b.WriteString(`<section class="day-card">`)
	b.WriteString(`<div class="day-header"`)
	b.WriteString(styleAttr(classify.ClassifyKeyCell(day.Key)))
	b.tag(`>`, esc(day.Key), `</div>`)

	ordinal := 0
	for _, seg := range grouping.SegmentPhases(day.Rows, header.Index(models.ColPhase)) {
		if seg.Phase != "" {
			b.tag(`<div class="phase-header">`, esc(seg.Phase), `</div>`)
		}
		for _, row := range seg.Rows {
			ex := ExerciseFromRow(row, header)
			switch {
			case ex.Blank():
				continue
			case ex.Forbidden():
				writeForbidden(&b, ex)
			default:
				ordinal++
				writeExercise(&b, ex, ordinal)
			}
		}
	}

	b.WriteString(`</section>`)
	return b.html()
}

func writeForbidden(b *builder, ex Exercise) {
	b.WriteString(`<div class="forbid-banner" role="alert">`)
	b.tag(`<div class="forbid-title">🚫 `, esc(ex.Name), `</div>`)
	if ex.Caution != "" {
		b.tag(`<div class="forbid-note">`, esc(ex.Caution), `</div>`)
	}
	b.WriteString(`</div>`)
}

func writeExercise(b *builder, ex Exercise, ordinal int) {
	b.WriteString(`<div class="ex-card" style="border-left-color:`)
	b.WriteString(esc(classify.CardAccent(ex.Type, ex.Caution)))
	b.WriteString(`;">`)

	b.WriteString(`<div class="ex-head"><span class="ex-no">`)
	b.itoa(ordinal)
	b.tag(`</span><span class="ex-name">`, esc(ex.Name), `</span>`)
	if ex.Type != "" {
		b.tag(`<span class="ex-type">`, esc(ex.Type), `</span>`)
	}
	b.WriteString(`</div>`)

	if ex.SetsReps != "" || ex.TargetRPE != "" {
		b.WriteString(`<div class="ex-meta">`)
		if ex.SetsReps != "" {
			b.tag(`<span class="ex-sets">`, esc(ex.SetsReps), `</span>`)
		}
		if ex.TargetRPE != "" {
			b.WriteString(`<span class="ex-label">RPE</span><span class="ex-rpe"`)
			b.WriteString(styleAttr(classify.IntensityBadge(ex.TargetRPE)))
			b.tag(`>`, esc(ex.TargetRPE), `</span>`)
		}
		b.WriteString(`</div>`)
	}

	writeField(b, "ex-tempo", models.ColTempo, ex.Tempo)
	writeField(b, "ex-progression", models.ColProgression, ex.Progression)
	writeField(b, "ex-caution", models.ColCaution, ex.Caution)

	b.WriteString(`</div>`)
}

func writeField(b *builder, class, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(`<div class="ex-field `)
	b.WriteString(class)
	b.tag(`"><span class="ex-label">`, esc(label), `</span>`)
	b.tag(`<span class="ex-value">`, esc(value), `</span></div>`)
}

// RenderCategoryCard renders body-condition groups as a header per category
// followed by one card per row, using the second and third columns as title
// and detail.
func RenderCategoryCard(groups []models.Group, header models.Header) template.HTML {
	if len(groups) == 0 {
		return NoData
	}

	var b builder
	for _, g := range groups {
		color := esc(classify.CategoryColor(g.Key))
		b.WriteString(`<div class="cat-header" style="color:`)
		b.WriteString(color)
		b.WriteString(`; border-left-color:`)
		b.WriteString(color)
		b.tag(`;">`, esc(g.Key), `</div>`)

		for _, row := range g.Rows {
			b.WriteString(`<div class="cat-card">`)
			b.WriteString(`<div class="cat-title" title="`)
			b.WriteString(esc(header.Name(1)))
			b.tag(`">`, esc(row.Cell(1)), `</div>`)
			if detail := row.Cell(2); detail != "" {
				b.tag(`<div class="cat-detail">`, esc(detail), `</div>`)
			}
			b.WriteString(`</div>`)
		}
	}
	return b.html()
}

// RenderCollapsibleDayCard renders a day card inside a disclosure element,
// used for the warm-up group that stays available beside the selected day.
func RenderCollapsibleDayCard(day models.Group, header models.Header) template.HTML {
	var b builder
	b.tag(`<details class="warmup"><summary>`, esc(day.Key), `</summary>`)
	b.WriteString(string(RenderDayCard(day, header)))
	b.WriteString(`</details>`)
	return b.html()
}
