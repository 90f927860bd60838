package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/parser"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging.level values.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// ValidLogFormats returns the accepted logging.format values.
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateServer()...)
	errs = append(errs, c.validateSource()...)
	errs = append(errs, c.validateLogging()...)
	if strings.TrimSpace(c.Dashboard.Title) == "" {
		errs = append(errs, ValidationError{"dashboard.title", c.Dashboard.Title, "must not be empty"})
	}
	return errs
}

func (c *Config) validateServer() []ValidationError {
	var errs []ValidationError
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, ValidationError{"server.port", c.Server.Port, "must be between 1 and 65535"})
	}
	if c.Server.ShutdownTimeout < 0 {
		errs = append(errs, ValidationError{"server.shutdown_timeout", c.Server.ShutdownTimeout, "must not be negative"})
	}
	return errs
}

func (c *Config) validateSource() []ValidationError {
	var errs []ValidationError
	s := c.Source

	switch source.Kind(s.Kind) {
	case source.KindXLSX, source.KindYAML:
		if s.Path == "" {
			errs = append(errs, ValidationError{"source.path", s.Path, "is required for kind " + s.Kind})
		}
	case source.KindGoogle:
		if s.SpreadsheetID == "" {
			errs = append(errs, ValidationError{"source.spreadsheet_id", s.SpreadsheetID, "is required for kind google"})
		}
		if s.CredentialsFile == "" {
			errs = append(errs, ValidationError{"source.credentials_file", s.CredentialsFile, "is required for kind google"})
		}
	default:
		errs = append(errs, ValidationError{"source.kind", s.Kind, fmt.Sprintf("must be one of %v", source.Kinds())})
	}

	if s.CacheTTL < 0 {
		errs = append(errs, ValidationError{"source.cache_ttl", s.CacheTTL, "must not be negative"})
	}
	if s.CacheSize < 0 {
		errs = append(errs, ValidationError{"source.cache_size", s.CacheSize, "must not be negative"})
	}

	names := make([]string, 0, len(s.Ranges))
	for name := range s.Ranges {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, _, err := parser.ParseRangeReference(s.Ranges[name]); err != nil {
			errs = append(errs, ValidationError{"source.ranges." + name, s.Ranges[name], err.Error()})
		}
	}
	return errs
}

func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError
	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errs = append(errs, ValidationError{"logging.level", c.Logging.Level, fmt.Sprintf("must be one of %v", ValidLogLevels())})
	}
	if !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{"logging.format", c.Logging.Format, fmt.Sprintf("must be one of %v", ValidLogFormats())})
	}
	return errs
}
