package component

import "github.com/l1jgo/camcycle/internal/linear"

// Transform places an entity in the world.
// When LooksAt is set, the entity is oriented towards Target.
// Pure data, zero methods. Matrices are derived by the scene package.
type Transform struct {
	Translation linear.V3
	Target      linear.V3
	Up          linear.V3
	LooksAt     bool
}
