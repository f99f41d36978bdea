package scripting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func writeScript(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func TestNewEngineMissingDir(t *testing.T) {
	e, err := NewEngine(filepath.Join(t.TempDir(), "nope"), zaptest.NewLogger(t))
	require.NoError(t, err)
	defer e.Close()
	assert.False(t, e.OnCameraSwitch(SwitchContext{From: "Secondary", To: "Primary"}))
}

func TestOnCameraSwitch(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "base.lua", `switches = {}`)
	writeScript(t, filepath.Join(dir, "camera"), "hook.lua", `
function on_camera_switch(ev)
  switches[#switches + 1] = ev.from .. ">" .. ev.to .. "@" .. ev.label .. "#" .. ev.tick
  log_info("switched to " .. ev.to)
end`)
	writeScript(t, dir, "notes.txt", `this is not lua (`)

	core, logs := observer.New(zapcore.InfoLevel)
	e, err := NewEngine(dir, zap.New(core))
	require.NoError(t, err)
	defer e.Close()

	ok := e.OnCameraSwitch(SwitchContext{From: "Secondary", To: "Primary", Label: "camera_3d", Entity: 4, Tick: 12})
	require.True(t, ok)

	got := e.vm.GetGlobal("switches").(*lua.LTable)
	assert.Equal(t, 1, got.Len())
	assert.Equal(t, "Secondary>Primary@camera_3d#12", got.RawGetInt(1).String())
	assert.Equal(t, 1, logs.FilterMessage("lua").FilterField(zap.String("msg", "switched to Primary")).Len())
}

func TestOnCameraSwitchError(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	e, err := NewEngine(t.TempDir(), zap.New(core))
	require.NoError(t, err)
	defer e.Close()

	require.NoError(t, e.DoString(`function on_camera_switch(ev) error("boom") end`))
	assert.False(t, e.OnCameraSwitch(SwitchContext{}))
	assert.Equal(t, 1, logs.FilterMessage("lua on_camera_switch error").Len())
}

func TestOnCameraCycle(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	e, err := NewEngine(t.TempDir(), zap.New(core))
	require.NoError(t, err)
	defer e.Close()

	assert.False(t, e.OnCameraCycle(CycleContext{From: "Secondary", To: "Primary"}))

	require.NoError(t, e.DoString(`
cycles = {}
function on_camera_cycle(ev) cycles[#cycles + 1] = ev.from .. ">" .. ev.to .. "#" .. ev.tick end`))
	require.True(t, e.OnCameraCycle(CycleContext{From: "Secondary", To: "Primary", Tick: 3}))
	got := e.vm.GetGlobal("cycles").(*lua.LTable)
	assert.Equal(t, "Secondary>Primary#3", got.RawGetInt(1).String())

	require.NoError(t, e.DoString(`function on_camera_cycle(ev) error("boom") end`))
	assert.False(t, e.OnCameraCycle(CycleContext{}))
	assert.Equal(t, 1, logs.FilterMessage("lua on_camera_cycle error").Len())
}

func TestNewEngineSyntaxError(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "broken.lua", `function (`)
	_, err := NewEngine(dir, zaptest.NewLogger(t))
	assert.ErrorContains(t, err, "broken.lua")
}
