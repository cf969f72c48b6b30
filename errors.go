package akka

import "errors"

const Namespace = "akka"

var (
	// ErrTimeout is returned by Await when the deadline passes without
	// completion. It is never stored as a future's outcome.
	ErrTimeout = errors.New(Namespace + ": future timed out")

	// ErrMatchFailure marks the synthetic failure produced when a Filter
	// predicate rejects a value or a Collect partial is undefined at it.
	ErrMatchFailure = errors.New(Namespace + ": value did not match the predicate")

	// ErrEmptyReduce marks the failure of a Reduce over no futures.
	ErrEmptyReduce = errors.New(Namespace + ": cannot reduce an empty sequence of futures")

	// ErrTaskPanicked wraps a panic recovered from a task body or a
	// combinator function. The recovered value is attached at the wrap site.
	ErrTaskPanicked = errors.New(Namespace + ": task execution panicked")

	// ErrListenerPanicked wraps a panic recovered while notifying a
	// completion listener. It is reported to the error sink only and never
	// propagated to the completing caller.
	ErrListenerPanicked = errors.New(Namespace + ": completion listener panicked")

	ErrSchedulerClosed = errors.New(Namespace + ": scheduler is closed")
	ErrInvalidConfig   = errors.New(Namespace + ": invalid configuration")
)
