package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for camera hooks.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads all scripts from the given
// directory and its camera/ subdirectory. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	// Set API version global
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	vm.SetGlobal("log_info", vm.NewFunction(e.luaLogInfo))

	for _, dir := range []string{scriptsDir, filepath.Join(scriptsDir, "camera")} {
		if err := e.loadDir(dir); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load scripts: %w", err)
		}
	}
	return e, nil
}

// loadDir loads all .lua files in a directory.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // skip missing dirs
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// DoString runs a chunk of Lua source in the engine's VM.
func (e *Engine) DoString(src string) error {
	return e.vm.DoString(src)
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// luaLogInfo lets scripts write to the application log: log_info(msg).
func (e *Engine) luaLogInfo(L *lua.LState) int {
	e.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}

// SwitchContext is handed to the on_camera_switch hook as a table.
type SwitchContext struct {
	From   string
	To     string
	Label  string
	Entity uint64
	Tick   uint64
}

// OnCameraSwitch calls the Lua on_camera_switch function, if scripts
// define one. It reports whether the hook ran successfully; script errors
// are logged and otherwise ignored.
func (e *Engine) OnCameraSwitch(ctx SwitchContext) bool {
	t := e.vm.NewTable()
	t.RawSetString("from", lua.LString(ctx.From))
	t.RawSetString("to", lua.LString(ctx.To))
	t.RawSetString("label", lua.LString(ctx.Label))
	t.RawSetString("entity", lua.LNumber(ctx.Entity))
	t.RawSetString("tick", lua.LNumber(ctx.Tick))
	return e.call("on_camera_switch", t)
}

// CycleContext is handed to the on_camera_cycle hook as a table.
type CycleContext struct {
	From string
	To   string
	Tick uint64
}

// OnCameraCycle calls the Lua on_camera_cycle function after the active
// slot advanced. Same contract as OnCameraSwitch.
func (e *Engine) OnCameraCycle(ctx CycleContext) bool {
	t := e.vm.NewTable()
	t.RawSetString("from", lua.LString(ctx.From))
	t.RawSetString("to", lua.LString(ctx.To))
	t.RawSetString("tick", lua.LNumber(ctx.Tick))
	return e.call("on_camera_cycle", t)
}

func (e *Engine) call(hook string, arg lua.LValue) bool {
	fn := e.vm.GetGlobal(hook)
	if fn == lua.LNil {
		return false
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    0,
		Protect: true,
	}, arg); err != nil {
		e.log.Error("lua "+hook+" error", zap.Error(err))
		return false
	}
	return true
}
