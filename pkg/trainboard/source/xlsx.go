package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/parser"
	"github.com/xuri/excelize/v2"
)

// XLSX reads sheets from a local workbook. The file is reopened on every
// fetch so edits show up on the next render. Without a configured range a
// sheet's print area, if any, limits what is read.
type XLSX struct {
	path   string
	ranges map[string]string
}

// NewXLSX returns a source backed by the workbook at path.
func NewXLSX(path string, ranges map[string]string) *XLSX {
	return &XLSX{path: path, ranges: ranges}
}

// FetchSheet implements Source.
func (x *XLSX) FetchSheet(ctx context.Context, name string) (models.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return models.Sheet{}, err
	}
	rng, err := rangeFor(x.ranges, name)
	if err != nil {
		return models.Sheet{}, err
	}

	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return models.Sheet{}, err
	}
	defer f.Close()

	if rng == nil {
		rng = parser.PrintArea(f, name)
	}
	sheet, err := parser.LoadSheet(f, name, rng)
	if errors.Is(err, parser.ErrSheetMissing) {
		return models.Sheet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
	}
	return sheet, err
}

// SheetNames implements Lister.
func (x *XLSX) SheetNames(ctx context.Context) ([]string, error) {
	f, err := excelize.OpenFile(x.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.GetSheetList(), nil
}
