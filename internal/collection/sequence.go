package collection

import "sync"

// Sequence hands out strictly increasing keys. Observe raises the floor so
// that keys loaded from elsewhere are never reissued.
type Sequence struct {
	mu   sync.Mutex
	last int64
}

func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last++

	return s.last
}

func (s *Sequence) Observe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id > s.last {
		s.last = id
	}
}
