package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultAPIBase, cfg.APIBaseURL)
	assert.Equal(t, 8000, cfg.RequestTimeoutMS)
	assert.Equal(t, 1, cfg.PagesPerRequest)
	assert.Equal(t, 1, cfg.PageNeighbors)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.UISettings.ShowImages)
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
api_base_url = "https://api.example.com/"
request_timeout_ms = 2500
pages_per_request = 3
page_neighbors = 2
log_level = "debug"

[ui]
card_width = 44
show_images = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	// Trailing slash is stripped so URL joining stays predictable
	assert.Equal(t, "https://api.example.com", cfg.APIBaseURL)
	assert.Equal(t, 2500, cfg.RequestTimeoutMS)
	assert.Equal(t, 3, cfg.PagesPerRequest)
	assert.Equal(t, 2, cfg.PageNeighbors)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 44, cfg.UISettings.CardWidth)
	assert.False(t, cfg.UISettings.ShowImages)
}

func TestLoadFromPathPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`api_base_url = "http://other:9000"`), 0o644))

	cs := NewConfigService()
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "http://other:9000", cfg.APIBaseURL)
	assert.Equal(t, 8000, cfg.RequestTimeoutMS)
	assert.True(t, cfg.UISettings.ShowImages)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	cs := NewConfigService()
	_, err := cs.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_base_url = [broken"), 0o644))

	cs := NewConfigService()
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv(EnvAPIBase, "http://from-env:4000/")

	cs := NewConfigService()
	cfg, err := cs.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:4000", cfg.APIBaseURL)
}

func TestNormalizeCoercesBadValues(t *testing.T) {
	cfg := &Config{
		APIBaseURL:       "  ",
		RequestTimeoutMS: -5,
		PagesPerRequest:  0,
		PageNeighbors:    -1,
		UISettings:       UISettings{CardWidth: 3},
	}
	normalize(cfg)

	assert.Equal(t, DefaultAPIBase, cfg.APIBaseURL)
	assert.Equal(t, 8000, cfg.RequestTimeoutMS)
	assert.Equal(t, 1, cfg.PagesPerRequest)
	assert.Equal(t, 1, cfg.PageNeighbors)
	assert.Equal(t, 36, cfg.UISettings.CardWidth)
}
