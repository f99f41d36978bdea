package ecs

import "iter"

// Removable is implemented by all component stores so the Registry can
// bulk-remove an entity's data from every store on destroy.
type Removable interface {
	Remove(id EntityID)
}

// Store is a generic typed component store.
// Components live in a dense slice indexed through a map, so iteration
// order is deterministic: insertion order, perturbed only by removals
// (the last element is swapped into the removed slot).
type Store[T any] struct {
	ids   []EntityID
	data  []*T
	index map[EntityID]int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		ids:   make([]EntityID, 0, 16),
		data:  make([]*T, 0, 16),
		index: make(map[EntityID]int, 16),
	}
}

// Set attaches c to id, replacing any previous component in place.
func (s *Store[T]) Set(id EntityID, c *T) {
	if i, ok := s.index[id]; ok {
		s.data[i] = c
		return
	}
	s.index[id] = len(s.data)
	s.ids = append(s.ids, id)
	s.data = append(s.data, c)
}

func (s *Store[T]) Get(id EntityID) (*T, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.data[i], true
}

func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	last := len(s.data) - 1
	if i < last {
		s.ids[i] = s.ids[last]
		s.data[i] = s.data[last]
		s.index[s.ids[i]] = i
	}
	s.ids[last] = Nil
	s.data[last] = nil
	s.ids = s.ids[:last]
	s.data = s.data[:last]
	delete(s.index, id)
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.data)
}

// Each calls fn for every component in store order.
// The store must not be modified until Each returns.
func (s *Store[T]) Each(fn func(EntityID, *T)) {
	for i, c := range s.data {
		fn(s.ids[i], c)
	}
}

// All returns an iterator over the store in the same order as Each.
func (s *Store[T]) All() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for i, c := range s.data {
			if !yield(s.ids[i], c) {
				return
			}
		}
	}
}
