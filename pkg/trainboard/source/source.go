// Package source provides the collaborators that fetch worksheets for the
// dashboard: local workbooks, YAML fixtures and Google Sheets.
package source

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/models"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/parser"
)

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrCredentials indicates the service account credentials are unusable.
var ErrCredentials = errors.New("invalid credentials")

// ErrUnsupportedKind indicates an unknown source kind in the configuration.
var ErrUnsupportedKind = errors.New("unsupported source kind")

// Source fetches one worksheet snapshot by title.
type Source interface {
	FetchSheet(ctx context.Context, name string) (models.Sheet, error)
}

// Lister is implemented by sources that can enumerate their worksheets.
type Lister interface {
	SheetNames(ctx context.Context) ([]string, error)
}

// Kind names a source implementation.
type Kind string

const (
	KindXLSX   Kind = "xlsx"
	KindYAML   Kind = "yaml"
	KindGoogle Kind = "google"
)

// Kinds returns the supported source kinds.
func Kinds() []Kind {
	return []Kind{KindXLSX, KindYAML, KindGoogle}
}

// Config selects and configures a source.
type Config struct {
	Kind            Kind
	Path            string
	SpreadsheetID   string
	CredentialsFile string
	// Ranges maps a sheet title to an A1 range limiting what is read.
	Ranges    map[string]string
	CacheTTL  time.Duration
	CacheSize int
}

// Open builds the source described by cfg, wrapped in a TTL cache when
// CacheTTL is positive.
func Open(cfg Config, opts ...GoogleOption) (Source, error) {
	var (
		src Source
		err error
	)
	switch cfg.Kind {
	case KindXLSX:
		src = NewXLSX(cfg.Path, cfg.Ranges)
	case KindYAML:
		src = NewYAML(cfg.Path)
	case KindGoogle:
		src, err = LoadGoogle(cfg.SpreadsheetID, cfg.CredentialsFile, append([]GoogleOption{WithRanges(cfg.Ranges)}, opts...)...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedKind, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}
	if cfg.CacheTTL <= 0 {
		return src, nil
	}
	return NewCached(src, cfg.CacheSize, cfg.CacheTTL)
}

// rangeFor parses the configured range for a sheet, if any. Keys match the
// sheet name exactly or, failing that, case-insensitively, since config
// loaders may lowercase map keys.
func rangeFor(ranges map[string]string, name string) (*models.CellRange, error) {
	ref := lookupRange(ranges, name)
	if ref == "" {
		return nil, nil
	}
	_, rng, err := parser.ParseRangeReference(ref)
	if err != nil {
		return nil, fmt.Errorf("range for sheet %q: %w", name, err)
	}
	return rng, nil
}

func lookupRange(ranges map[string]string, name string) string {
	if ref, ok := ranges[name]; ok {
		return ref
	}
	for _, key := range slices.Sorted(maps.Keys(ranges)) {
		if strings.EqualFold(key, name) {
			return ranges[key]
		}
	}
	return ""
}
