package trainboard

import (
	"context"
	"slices"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/render"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/view"
)

// Snapshot holds the four worksheets read for one render.
type Snapshot struct {
	Weekly  models.Sheet
	Library models.Sheet
	Body    models.Sheet
	Notes   models.Sheet
}

// Fetch reads every dashboard worksheet from src in tab order. The first
// failure stops the fetch and is returned as a *FetchError.
func Fetch(ctx context.Context, src source.Source) (*Snapshot, error) {
	sheets := make([]models.Sheet, 0, 4)
	for _, name := range models.SheetNames() {
		sheet, err := src.FetchSheet(ctx, name)
		if err != nil {
			return nil, NewFetchError(name, err)
		}
		sheets = append(sheets, sheet)
	}
	return &Snapshot{
		Weekly:  sheets[0],
		Library: sheets[1],
		Body:    sheets[2],
		Notes:   sheets[3],
	}, nil
}

// Assemble builds the page for a fetched snapshot.
func Assemble(snap *Snapshot, sel view.Selection, vp view.Viewport, opts Options) models.Page {
	mode := view.ModeFor(vp)
	tabs := []models.Tab{
		view.WeeklyTab(snap.Weekly, sel, mode),
		view.LibraryTab(snap.Library, sel),
		view.BodyTab(snap.Body, mode),
		view.NotesTab(snap.Notes),
	}
	return models.Page{
		Title:         opts.title(),
		Caption:       opts.caption(),
		Mode:          mode.String(),
		ActiveTab:     activeTab(tabs, sel.Tab),
		ViewportWidth: max(vp.Width, 0),
		Tabs:          tabs,
	}
}

// Build fetches every worksheet and assembles the page. When any fetch
// fails the returned page carries only the failure banner, together with
// the *FetchError.
func Build(ctx context.Context, src source.Source, sel view.Selection, vp view.Viewport, opts Options) (models.Page, error) {
	snap, err := Fetch(ctx, src)
	if err != nil {
		return models.Page{
			Title:   opts.title(),
			Caption: opts.caption(),
			Mode:    view.ModeFor(vp).String(),
			Banner:  render.ErrorBanner(err),
		}, err
	}
	return Assemble(snap, sel, vp, opts), nil
}

func activeTab(tabs []models.Tab, want string) string {
	if slices.ContainsFunc(tabs, func(t models.Tab) bool { return t.ID == want }) {
		return want
	}
	return tabs[0].ID
}
