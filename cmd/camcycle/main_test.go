package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/l1jgo/camcycle/internal/camera"
	"github.com/l1jgo/camcycle/internal/config"
	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/input"
	"github.com/l1jgo/camcycle/internal/scene"
	"github.com/l1jgo/camcycle/internal/system"
)

func TestNewLogger(t *testing.T) {
	log, err := newLogger(config.LoggingConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = newLogger(config.LoggingConfig{Level: "nonsense", Format: "json"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
}

func TestStartupHelpers(t *testing.T) {
	var buf bytes.Buffer
	printSection(&buf, "Scene")
	printStat(&buf, "cameras", 2)
	printOK(&buf, "built-in scene")
	out := buf.String()
	assert.Contains(t, out, "── Scene ")
	assert.Contains(t, out, "cameras")
	assert.Contains(t, out, "built-in scene")

	assert.Equal(t, "  ab", centered("ab", 6))
	assert.Equal(t, "too long", centered("too long", 4))
}

func TestTeardown(t *testing.T) {
	sc := scene.New()
	reg := camera.NewRegistry()
	runner := coresys.NewRunner()
	runner.AddStartup("scene", func() error {
		return sc.Setup(scene.Default(), camera.Secondary, reg)
	})
	runner.Register(system.NewCleanupSystem(sc.World, input.NewKeys()))
	require.NoError(t, runner.Startup())

	core, logs := observer.New(zapcore.InfoLevel)
	teardown(runner, sc, reg, zap.New(core))

	assert.Equal(t, 0, sc.World.Len())
	entries := logs.FilterMessage("scene despawned").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(5), entries[0].ContextMap()["entities"])
	assert.Equal(t, int64(0), entries[0].ContextMap()["remaining"])
}
