package collection

import (
	"slices"
	"sync"
)

// Entity is a record with an integer key. WithKey returns a copy carrying
// the given key, leaving the receiver untouched.
type Entity[T any] interface {
	Key() int64
	WithKey(id int64) T
}

// Store is an in-memory, ordered collection. Mutations swap in a new slice,
// so snapshots handed out by All stay valid and unchanged.
type Store[T Entity[T]] struct {
	mu    sync.RWMutex
	items []T
}

func NewStore[T Entity[T]](initial ...T) *Store[T] {
	return &Store[T]{items: slices.Clone(initial)}
}

// Load replaces the entire contents of the store.
func (s *Store[T]) Load(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = slices.Clone(items)
}

func (s *Store[T]) All() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.items)
}

func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := slices.IndexFunc(s.items, func(item T) bool { return item.Key() == id })
	if i < 0 {
		var zero T
		return zero, false
	}

	return s.items[i], true
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

func (s *Store[T]) MaxKey() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var highest int64
	for _, item := range s.items {
		if item.Key() > highest {
			highest = item.Key()
		}
	}

	return highest
}

// mutate runs fn against the current items under the write lock. fn must not
// modify its argument; when it reports a change, its returned slice becomes
// the new contents.
func (s *Store[T]) mutate(fn func(current []T) ([]T, bool)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := fn(s.items)
	if changed {
		s.items = next
	}

	return changed
}
