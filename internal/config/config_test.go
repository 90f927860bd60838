package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/trainboard-go/pkg/trainboard/source"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaultsOn(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func TestDefaultIsValid(t *testing.T) {
	assert.Empty(t, Default().Validate())
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(newViper())
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 8501, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "xlsx", cfg.Source.Kind)
	assert.Equal(t, time.Minute, cfg.Source.CacheTTL)
	assert.Equal(t, "💪 道长训练计划", cfg.Dashboard.Title)
}

func TestLoadFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9000
source:
  kind: yaml
  path: plan.yaml
  cache_ttl: 0s
  ranges:
    备注与说明: A1:B20
logging:
  format: json
`), 0o644))

	t.Setenv("TRAINBOARD_SERVER_HOST", "0.0.0.0")
	v := newViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.Source.CacheTTL)
	assert.Equal(t, "A1:B20", cfg.Source.Ranges["备注与说明"])

	sc := cfg.SourceOptions()
	assert.Equal(t, source.KindYAML, sc.Kind)
	assert.Equal(t, "plan.yaml", sc.Path)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		fields []string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, []string{"server.port"}},
		{"unknown kind", func(c *Config) { c.Source.Kind = "csv" }, []string{"source.kind"}},
		{"google needs id and credentials", func(c *Config) { c.Source.Kind = "google" }, []string{"source.spreadsheet_id", "source.credentials_file"}},
		{"xlsx needs path", func(c *Config) { c.Source.Path = "" }, []string{"source.path"}},
		{"negative ttl", func(c *Config) { c.Source.CacheTTL = -time.Second }, []string{"source.cache_ttl"}},
		{"bad range", func(c *Config) { c.Source.Ranges = map[string]string{"动作库": "A1"} }, []string{"source.ranges.动作库"}},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, []string{"logging.level"}},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, []string{"logging.format"}},
		{"empty title", func(c *Config) { c.Dashboard.Title = " " }, []string{"dashboard.title"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			var fields []string
			for _, e := range cfg.Validate() {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tt.fields, fields)
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "", ValidationErrors(nil).Error())

	one := ValidationErrors{{Field: "server.port", Value: 0, Message: "must be between 1 and 65535"}}
	assert.Equal(t, "server.port: must be between 1 and 65535 (got: 0)", one.Error())

	two := append(one, ValidationError{Field: "logging.level", Value: "x", Message: "bad"})
	assert.Contains(t, two.Error(), "2 validation errors:")
}

func TestLoadFrom_ReturnsValidationErrors(t *testing.T) {
	v := newViper()
	v.Set("server.port", 70000)
	_, err := LoadFrom(v)
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 1)
}

func TestConfigDir_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	assert.Equal(t, filepath.Join(dir, "trainboard"), ConfigDir())
	assert.Equal(t, filepath.Join(dir, "trainboard", "config.yaml"), ConfigFile())
}
