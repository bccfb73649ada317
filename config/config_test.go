package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.CaptureDelayMs)
	assert.Equal(t, BackendAuto, cfg.Backend)
	assert.Equal(t, 200*time.Millisecond, cfg.CaptureDelay())
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := DefaultConfig()
	cfg.CaptureDelayMs = 350
	cfg.Backend = "portal"
	cfg.SaveFormat = "jpeg"
	cfg.SelectionX, cfg.SelectionY, cfg.SelectionW, cfg.SelectionH = 10, 20, 300, 200
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 350, loaded.CaptureDelayMs)
	assert.Equal(t, BackendPortal, loaded.Backend)
	assert.Equal(t, "jpg", loaded.SaveFormat)
	assert.Equal(t, 300, loaded.SelectionW)
}

func TestLoad_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	cfg, err := Load(path)
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 200, cfg.CaptureDelayMs)
}

func TestValidate_Clamps(t *testing.T) {
	cfg := &Config{
		CaptureDelayMs: -5,
		Backend:        "x11",
		DefaultMode:    "WINDOW",
		SaveFormat:     "bmp",
		PreviewMaxW:    1,
		LogLevel:       "loud",
		SelectionW:     -1,
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0, cfg.CaptureDelayMs)
	assert.Equal(t, BackendAuto, cfg.Backend)
	assert.Equal(t, "window", cfg.DefaultMode)
	assert.Equal(t, "png", cfg.SaveFormat)
	assert.Equal(t, 100, cfg.PreviewMaxW)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 0, cfg.SelectionW)
	assert.NotEmpty(t, cfg.SaveDirectory)
}
