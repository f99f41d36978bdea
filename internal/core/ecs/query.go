package ecs

// Each2 iterates over entities that have both component A and B,
// in the order of store sa.
func Each2[A, B any](sa *Store[A], sb *Store[B], fn func(EntityID, *A, *B)) {
	for i, a := range sa.data {
		id := sa.ids[i]
		if b, ok := sb.Get(id); ok {
			fn(id, a, b)
		}
	}
}

// Last2 returns the last entity, in the order of sa, that has both
// components and satisfies match.
func Last2[A, B any](sa *Store[A], sb *Store[B], match func(*A, *B) bool) (EntityID, bool) {
	for i := len(sa.data) - 1; i >= 0; i-- {
		id := sa.ids[i]
		if b, ok := sb.Get(id); ok && match(sa.data[i], b) {
			return id, true
		}
	}
	return Nil, false
}
