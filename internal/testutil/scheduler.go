package testutil

import (
	"context"
	"sync"
)

// ManualScheduler is a host.Scheduler for tests. Work runs as soon as it is
// scheduled, so fetches are counted when they are issued, but completions
// are held until the test resolves them, in any order it likes.
type ManualScheduler struct {
	mu      sync.Mutex
	pending []func()
	issued  int
}

// Go implements host.Scheduler.
func (s *ManualScheduler) Go(work func(ctx context.Context) func()) {
	apply := work(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	if apply == nil {
		apply = func() {}
	}
	s.pending = append(s.pending, apply)
}

// Issued returns how many pieces of work were scheduled.
func (s *ManualScheduler) Issued() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}

// Pending returns how many completions are waiting to be resolved.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Resolve applies the i-th pending completion, counting from the oldest.
func (s *ManualScheduler) Resolve(i int) {
	s.mu.Lock()
	apply := s.pending[i]
	s.pending = append(s.pending[:i:i], s.pending[i+1:]...)
	s.mu.Unlock()

	apply()
}

// ResolveLast applies the newest pending completion.
func (s *ManualScheduler) ResolveLast() {
	s.Resolve(s.Pending() - 1)
}

// ResolveAll applies, oldest first, the completions pending at the time of
// the call. Completions scheduled while resolving stay pending.
func (s *ManualScheduler) ResolveAll() {
	n := s.Pending()
	for i := 0; i < n; i++ {
		s.Resolve(0)
	}
}
