package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/input"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, input.KeyC, cfg.Input.CycleKey)
	assert.Equal(t, camera.Secondary, cfg.Camera.InitialSlot)
	assert.Equal(t, time.Second/60, cfg.Loop.TickRate)
	assert.Equal(t, "", cfg.Scene.Path)
}

func TestLoadFull(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "full.toml"))
	require.NoError(t, err)
	assert.Equal(t, "viewer", cfg.App.Name)
	assert.Equal(t, 50*time.Millisecond, cfg.Loop.TickRate)
	assert.Equal(t, input.KeySpace, cfg.Input.CycleKey)
	assert.Equal(t, 8, cfg.Input.QueueSize)
	assert.Equal(t, camera.Primary, cfg.Camera.InitialSlot)
	assert.Equal(t, "data/scene.yaml", cfg.Scene.Path)
	assert.False(t, cfg.Scripting.Enabled)
	assert.Equal(t, "scripts", cfg.Scripting.Dir, "unset keys keep defaults")
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotZero(t, cfg.App.StartTime)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(filepath.Join("testdata", "bad_key.toml"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(filepath.Join("testdata", "bad_values.toml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "tick_rate")
	assert.ErrorContains(t, err, "logging.format")
}
