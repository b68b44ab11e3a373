package infosystem

import (
	"sync"
	"sync/atomic"
)

// Store is a concurrent map from request ID to a value.
type Store[T any] struct {
	m sync.Map
	n atomic.Int64
}

// NewStore creates an empty Store.
func NewStore[T any]() *Store[T] { return &Store[T]{} }

// Put stores v under id, replacing any previous value.
func (s *Store[T]) Put(id string, v T) {
	if _, loaded := s.m.Swap(id, v); !loaded {
		s.n.Add(1)
	}
}

// Get returns the value stored under id.
func (s *Store[T]) Get(id string) (T, bool) {
	v, ok := s.m.Load(id)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Take removes and returns the value stored under id. Only one concurrent caller receives it.
func (s *Store[T]) Take(id string) (T, bool) {
	v, ok := s.m.LoadAndDelete(id)
	if !ok {
		var zero T
		return zero, false
	}
	s.n.Add(-1)
	return v.(T), true
}

// Len returns the number of stored values.
func (s *Store[T]) Len() int {
	return int(s.n.Load())
}
