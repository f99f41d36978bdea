package system

import (
	"time"

	"github.com/l1jgo/camcycle/internal/core/ecs"
	coresys "github.com/l1jgo/camcycle/internal/core/system"
	"github.com/l1jgo/camcycle/internal/input"
)

// CleanupSystem resets per-tick key transitions and flushes the deferred
// entity destruction queue at tick end.
// Phase 6 (Cleanup).
type CleanupSystem struct {
	world *ecs.World
	keys  *input.Keys
}

func NewCleanupSystem(world *ecs.World, keys *input.Keys) *CleanupSystem {
	return &CleanupSystem{world: world, keys: keys}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	s.keys.Clear()
	s.world.FlushDestroyQueue()
}
