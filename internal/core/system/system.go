package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: drain key events into the input resource
	PhasePreUpdate               // 1: dispatch last tick's events
	PhaseUpdate                  // 2: state transitions
	PhasePostUpdate              // 3: apply state to the scene (camera hand-off)
	PhaseBind                    // 4: bind registry labels to entities
	PhaseOutput                  // 5: console output
	PhaseCleanup                 // 6: reset per-tick input, destroy queued entities
)

var phaseNames = [...]string{"input", "pre_update", "update", "post_update", "bind", "output", "cleanup"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// System is the interface every ECS system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}

// Func adapts a plain function to the System interface.
type Func struct {
	P Phase
	F func(dt time.Duration)
}

func (f Func) Phase() Phase { return f.P }

func (f Func) Update(dt time.Duration) { f.F(dt) }
