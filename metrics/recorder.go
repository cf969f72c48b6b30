// Package metrics instruments the future execution path. The executor
// reports lifecycle events through the Recorder port; implementations
// aggregate them in memory (Stats), export them to Prometheus (Exporter),
// or discard them (Nop, the default).
package metrics

import "time"

// Recorder receives execution events from the executor.
// Implementations must be safe for concurrent use and must not block.
//
// Keep this interface minimal and stable. New events should only be added
// when the executor actually emits them.
type Recorder interface {
	// Submitted records a thunk accepted for execution.
	Submitted()

	// Started records a thunk beginning execution on a worker.
	Started()

	// Finished records a thunk that finished after running for d,
	// whether or not it panicked.
	Finished(d time.Duration)

	// Panicked records a panic recovered at the worker boundary.
	Panicked()
}

// Nop discards every event.
type Nop struct{}

func (Nop) Submitted() {}

func (Nop) Started() {}

func (Nop) Finished(time.Duration) {}

func (Nop) Panicked() {}
