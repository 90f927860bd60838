package source

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/parser"
)

// Workbook is the YAML fixture layout: an ordered list of sheets, each a
// grid whose first row is the header.
type Workbook struct {
	Sheets []WorkbookSheet `yaml:"sheets"`
}

// WorkbookSheet is one sheet of a YAML fixture.
type WorkbookSheet struct {
	Name string     `yaml:"name"`
	Rows [][]string `yaml:"rows"`
}

// YAML reads sheets from a fixture file.
type YAML struct {
	path string
}

// NewYAML returns a source backed by the fixture at path.
func NewYAML(path string) *YAML {
	return &YAML{path: path}
}

func (y *YAML) load() (*Workbook, error) {
	data, err := os.ReadFile(y.path)
	if err != nil {
		return nil, err
	}
	var wb Workbook
	if err := yaml.Unmarshal(data, &wb); err != nil {
		return nil, fmt.Errorf("parse %s: %w", y.path, err)
	}
	return &wb, nil
}

// FetchSheet implements Source.
func (y *YAML) FetchSheet(ctx context.Context, name string) (models.Sheet, error) {
	if err := ctx.Err(); err != nil {
		return models.Sheet{}, err
	}
	wb, err := y.load()
	if err != nil {
		return models.Sheet{}, err
	}
	for _, s := range wb.Sheets {
		if s.Name == name {
			return parser.BuildSheet(name, s.Rows), nil
		}
	}
	return models.Sheet{}, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
}

// SheetNames implements Lister.
func (y *YAML) SheetNames(ctx context.Context) ([]string, error) {
	wb, err := y.load()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		names[i] = s.Name
	}
	return names, nil
}
