package event

import "github.com/l1jgo/camcycle/internal/core/ecs"

// CameraCycled is emitted when the active camera slot advances.
type CameraCycled struct {
	From string
	To   string
}

// CameraSwitched is emitted when the render designation moves to
// another camera entity.
type CameraSwitched struct {
	Entity ecs.EntityID
	Label  string
	From   string
	To     string
}
