// Package config holds the trainboard configuration, loaded through viper
// from defaults, an optional YAML file and TRAINBOARD_ environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/ukaji3/trainboard-go/pkg/trainboard"
	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

// EnvPrefix prefixes environment overrides, e.g. TRAINBOARD_SERVER_PORT.
const EnvPrefix = "TRAINBOARD"

// Config is the complete trainboard configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Source    SourceConfig    `mapstructure:"source"`
	Dashboard DashboardConfig `mapstructure:"dashboard"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// ServerConfig controls the HTTP host.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// SourceConfig selects where worksheets are read from.
type SourceConfig struct {
	Kind            string            `mapstructure:"kind"`
	Path            string            `mapstructure:"path"`
	SpreadsheetID   string            `mapstructure:"spreadsheet_id"`
	CredentialsFile string            `mapstructure:"credentials_file"`
	CacheTTL        time.Duration     `mapstructure:"cache_ttl"`
	CacheSize       int               `mapstructure:"cache_size"`
	Ranges          map[string]string `mapstructure:"ranges"`
}

// DashboardConfig sets the page chrome.
type DashboardConfig struct {
	Title   string `mapstructure:"title"`
	Caption string `mapstructure:"caption"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "127.0.0.1",
			Port:            8501,
			ShutdownTimeout: 10 * time.Second,
		},
		Source: SourceConfig{
			Kind:      string(source.KindXLSX),
			Path:      "training_plan.xlsx",
			CacheTTL:  60 * time.Second,
			CacheSize: source.DefaultCacheSize,
		},
		Dashboard: DashboardConfig{
			Title:   trainboard.DefaultTitle,
			Caption: trainboard.DefaultCaption,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers every default with viper.
func SetDefaults() {
	SetDefaultsOn(viper.GetViper())
}

// SetDefaultsOn registers every default with v.
func SetDefaultsOn(v *viper.Viper) {
	d := Default()

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("source.kind", d.Source.Kind)
	v.SetDefault("source.path", d.Source.Path)
	v.SetDefault("source.spreadsheet_id", d.Source.SpreadsheetID)
	v.SetDefault("source.credentials_file", d.Source.CredentialsFile)
	v.SetDefault("source.cache_ttl", d.Source.CacheTTL)
	v.SetDefault("source.cache_size", d.Source.CacheSize)
	v.SetDefault("source.ranges", map[string]string{})

	v.SetDefault("dashboard.title", d.Dashboard.Title)
	v.SetDefault("dashboard.caption", d.Dashboard.Caption)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}
	return &cfg, nil
}

// SourceOptions converts the source section for source.Open.
func (c *Config) SourceOptions() source.Config {
	return source.Config{
		Kind:            source.Kind(c.Source.Kind),
		Path:            c.Source.Path,
		SpreadsheetID:   c.Source.SpreadsheetID,
		CredentialsFile: c.Source.CredentialsFile,
		Ranges:          c.Source.Ranges,
		CacheTTL:        c.Source.CacheTTL,
		CacheSize:       c.Source.CacheSize,
	}
}

// Options converts the dashboard section for trainboard.Build.
func (c *Config) Options() trainboard.Options {
	return trainboard.Options{Title: c.Dashboard.Title, Caption: c.Dashboard.Caption}
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "trainboard")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".trainboard"
	}
	return filepath.Join(home, ".config", "trainboard")
}

// ConfigFile returns the path to the user config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
