package system

import (
	"time"

	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/input"
	"go.uber.org/zap"
)

// InputSystem drains key events from the reader into the Keys resource.
// Phase 0 (Input).
//
// A release of a key pressed during the same tick is held back until the
// next tick, so a tap is always observed as just-pressed exactly once.
type InputSystem struct {
	events     <-chan input.Event
	keys       *input.Keys
	maxPerTick int
	deferred   []input.Key
	log        *zap.Logger
}

func NewInputSystem(events <-chan input.Event, keys *input.Keys, maxPerTick int, log *zap.Logger) *InputSystem {
	if maxPerTick < 1 {
		maxPerTick = 1
	}
	return &InputSystem{
		events:     events,
		keys:       keys,
		maxPerTick: maxPerTick,
		log:        log,
	}
}

func (s *InputSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *InputSystem) Update(_ time.Duration) {
	for _, k := range s.deferred {
		s.keys.Release(k)
	}
	s.deferred = s.deferred[:0]

	for i := 0; i < s.maxPerTick; i++ {
		select {
		case ev := <-s.events:
			s.apply(ev)
		default:
			return
		}
	}
}

func (s *InputSystem) apply(ev input.Event) {
	switch {
	case ev.Pressed:
		s.keys.Press(ev.Key)
	case s.keys.JustPressed(ev.Key):
		s.deferred = append(s.deferred, ev.Key)
	default:
		s.keys.Release(ev.Key)
	}
	s.log.Debug("key",
		zap.Stringer("key", ev.Key),
		zap.Bool("pressed", ev.Pressed),
	)
}
