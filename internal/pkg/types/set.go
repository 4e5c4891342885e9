package types

import (
	"iter"
	"slices"
)

// Set is a generic set for comparable types that remembers insertion order.
//
// Membership tests use a map; iteration and ToSlice yield elements in the
// order they were first added. The zero value is not usable; create sets
// with NewSet.
type Set[T comparable] struct {
	index map[T]int
	items []T
}

// NewSet creates a new Set and inserts the provided elements in order,
// skipping duplicates.
func NewSet[T comparable](data ...T) *Set[T] {
	s := &Set[T]{
		index: make(map[T]int, len(data)),
		items: make([]T, 0, len(data)),
	}
	s.Add(data...)
	return s
}

// Add inserts the values not yet present, keeping their relative order.
// It returns the number of values actually inserted.
func (s *Set[T]) Add(values ...T) int {
	added := 0
	for _, v := range values {
		if _, ok := s.index[v]; ok {
			continue
		}
		s.index[v] = len(s.items)
		s.items = append(s.items, v)
		added++
	}
	return added
}

// Delete removes the given values. The order of the remaining elements is
// preserved.
func (s *Set[T]) Delete(values ...T) {
	for _, v := range values {
		i, ok := s.index[v]
		if !ok {
			continue
		}

		delete(s.index, v)
		s.items = slices.Delete(s.items, i, i+1)
		for j := i; j < len(s.items); j++ {
			s.index[s.items[j]] = j
		}
	}
}

// Has reports whether v is in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// ToIter returns an iterator over the elements in insertion order.
func (s *Set[T]) ToIter() iter.Seq[T] {
	return slices.Values(s.items)
}

// ToSlice returns a copy of the elements in insertion order.
func (s *Set[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
