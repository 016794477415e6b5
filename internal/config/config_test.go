package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dexterm/internal/config"
	"github.com/rshade/dexterm/internal/logging"
)

func envFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.DefaultBaseURL, cfg.Catalog.BaseURL)
	assert.Equal(t, 20, cfg.Catalog.PageSize)
	assert.Equal(t, 0, cfg.Catalog.Concurrency)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeOverlay(t, `
catalog:
  base_url: http://example.test/api/v2
  page_size: 10
logging:
  level: warn
`)

	cfg, err := config.Load(path, envFrom(map[string]string{
		config.EnvPageSize: "5",
		config.EnvLogLevel: "debug",
	}))
	require.NoError(t, err)

	assert.Equal(t, "http://example.test/api/v2", cfg.Catalog.BaseURL)
	assert.Equal(t, 5, cfg.Catalog.PageSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	path := writeOverlay(t, "output:\n  default_format: json\n")

	cfg, err := config.Load("", envFrom(map[string]string{config.EnvConfig: path}))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	tests := []struct {
		name string
		env  map[string]string
		yaml string
	}{
		{name: "page size not a number", env: map[string]string{config.EnvPageSize: "many"}},
		{name: "page size too large", env: map[string]string{config.EnvPageSize: "5000"}},
		{name: "base url not a url", env: map[string]string{config.EnvBaseURL: "not a url"}},
		{name: "bad output format", yaml: "output:\n  default_format: xml\n"},
		{name: "bad log level", yaml: "logging:\n  level: chatty\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ""
			if tt.yaml != "" {
				path = writeOverlay(t, tt.yaml)
			}
			_, err := config.Load(path, envFrom(tt.env))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoggingConfig_ToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "console"}
	assert.Equal(t, logging.OutputStderr, lc.ToLoggingConfig().Output)

	lc.File = "/tmp/dexterm.log"
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/dexterm.log", got.File)
	assert.False(t, got.Caller)

	lc.Caller = true
	assert.True(t, lc.ToLoggingConfig().Caller)
}
