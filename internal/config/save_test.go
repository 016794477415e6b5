package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dexterm/internal/config"
)

func TestSave_RoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Catalog.PageSize = 50
	cfg.Catalog.Timeout = 3 * time.Second
	cfg.Output.DefaultFormat = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path, envFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_NoPath(t *testing.T) {
	require.ErrorIs(t, config.New().Save(""), config.ErrInvalidConfig)
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, filepath.Join(home, ".dexterm", "config.yaml"), config.DefaultPath())
}
