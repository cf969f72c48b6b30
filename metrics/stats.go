package metrics

import (
	"sync"
	"time"
)

// Stats aggregates execution events in memory. It is concurrency-safe and
// suitable for tests and lightweight apps; read it with Snapshot.
type Stats struct {
	mu        sync.Mutex
	submitted int64
	inflight  int64
	finished  int64
	panicked  int64
	runtime   time.Duration
	longest   time.Duration
}

// NewStats returns an empty in-memory recorder.
func NewStats() *Stats { return &Stats{} }

func (s *Stats) Submitted() {
	s.mu.Lock()
	s.submitted++
	s.mu.Unlock()
}

func (s *Stats) Started() {
	s.mu.Lock()
	s.inflight++
	s.mu.Unlock()
}

func (s *Stats) Finished(d time.Duration) {
	s.mu.Lock()
	s.inflight--
	s.finished++
	s.runtime += d
	if d > s.longest {
		s.longest = d
	}
	s.mu.Unlock()
}

func (s *Stats) Panicked() {
	s.mu.Lock()
	s.panicked++
	s.mu.Unlock()
}

// Snapshot is the state of a Stats recorder at one instant.
type Snapshot struct {
	// Submitted counts thunks accepted by the executor.
	Submitted int64

	// Inflight is the number of thunks currently executing.
	Inflight int64

	// Finished counts thunks that ran to completion, panicking or not.
	Finished int64

	// Panicked counts panics recovered at the worker boundary.
	Panicked int64

	// Runtime is the summed execution time of finished thunks.
	Runtime time.Duration

	// Longest is the longest single execution observed.
	Longest time.Duration
}

// Snapshot returns a copy of the current state.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Submitted: s.submitted,
		Inflight:  s.inflight,
		Finished:  s.finished,
		Panicked:  s.panicked,
		Runtime:   s.runtime,
		Longest:   s.longest,
	}
}
