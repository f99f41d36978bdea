package system

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunnerPhaseOrder(t *testing.T) {
	r := NewRunner()
	var trace []string
	add := func(p Phase, name string) {
		r.Register(Func{P: p, F: func(time.Duration) { trace = append(trace, name) }})
	}
	add(PhaseOutput, "report")
	add(PhaseInput, "input")
	add(PhaseUpdate, "cycle")
	add(PhasePostUpdate, "switch")
	add(PhaseUpdate, "cycle2")
	add(PhaseCleanup, "cleanup")

	r.Tick(time.Millisecond)
	assert.Equal(t, []string{"input", "cycle", "cycle2", "switch", "report", "cleanup"}, trace)
	assert.EqualValues(t, 1, r.Ticks())

	trace = trace[:0]
	r.TickPhase(PhaseUpdate, time.Millisecond)
	assert.Equal(t, []string{"cycle", "cycle2"}, trace)
	assert.EqualValues(t, 1, r.Ticks())
}

func TestRunnerStartup(t *testing.T) {
	r := NewRunner()
	var ran []string
	r.AddStartup("scene", func() error { ran = append(ran, "scene"); return nil })
	r.AddStartup("registry", func() error { ran = append(ran, "registry"); return nil })
	require.NoError(t, r.Startup())
	require.NoError(t, r.Startup())
	assert.Equal(t, []string{"scene", "registry"}, ran)
}

func TestRunnerStartupError(t *testing.T) {
	r := NewRunner()
	boom := errors.New("boom")
	called := false
	r.AddStartup("bad", func() error { return boom })
	r.AddStartup("never", func() error { called = true; return nil })
	err := r.Startup()
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "startup bad")
	assert.False(t, called)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "post_update", PhasePostUpdate.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
