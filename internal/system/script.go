package system

import (
	"github.com/l1jgo/camcycle/internal/core/event"
	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/scripting"
)

// SubscribeScripts forwards camera cycles and switches to the Lua hooks.
// Hooks run during PreUpdate of the tick after the event.
func SubscribeScripts(bus *event.Bus, lua *scripting.Engine, r *coresys.Runner) {
	event.Subscribe(bus, func(ev event.CameraCycled) {
		lua.OnCameraCycle(scripting.CycleContext{From: ev.From, To: ev.To, Tick: r.Ticks()})
	})
	event.Subscribe(bus, func(ev event.CameraSwitched) {
		lua.OnCameraSwitch(scripting.SwitchContext{
			From:   ev.From,
			To:     ev.To,
			Label:  ev.Label,
			Entity: uint64(ev.Entity),
			Tick:   r.Ticks(),
		})
	})
}
