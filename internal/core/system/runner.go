package system

import (
	"fmt"
	"sort"
	"time"
)

// Runner executes systems in phase order each tick.
// Systems sharing a phase run in registration order.
type Runner struct {
	systems []System
	sorted  bool
	startup []startupHook
	started bool
	ticks   uint64
}

type startupHook struct {
	name string
	fn   func() error
}

func NewRunner() *Runner {
	return &Runner{
		systems: make([]System, 0, 8),
	}
}

func (r *Runner) Register(s System) {
	r.systems = append(r.systems, s)
	r.sorted = false
}

// AddStartup registers fn to run once, before the first tick.
func (r *Runner) AddStartup(name string, fn func() error) {
	r.startup = append(r.startup, startupHook{name: name, fn: fn})
}

// Startup runs the startup hooks in registration order.
// It stops at the first failing hook. Calling it again is a no-op.
func (r *Runner) Startup() error {
	if r.started {
		return nil
	}
	r.started = true
	for _, h := range r.startup {
		if err := h.fn(); err != nil {
			return fmt.Errorf("startup %s: %w", h.name, err)
		}
	}
	return nil
}

func (r *Runner) Tick(dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		s.Update(dt)
	}
	r.ticks++
}

// TickPhase runs only the systems of the given phase.
// It does not advance the tick counter.
func (r *Runner) TickPhase(phase Phase, dt time.Duration) {
	r.ensureSorted()
	for _, s := range r.systems {
		if s.Phase() == phase {
			s.Update(dt)
		}
	}
}

// Ticks returns the number of completed calls to Tick.
func (r *Runner) Ticks() uint64 { return r.ticks }

func (r *Runner) ensureSorted() {
	if !r.sorted {
		sort.SliceStable(r.systems, func(i, j int) bool {
			return r.systems[i].Phase() < r.systems[j].Phase()
		})
		r.sorted = true
	}
}
