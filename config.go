package akka

import (
	"math"
	"time"

	"github.com/sajmmon/akka/metrics"
)

// Unbounded denotes an effectively unlimited lifetime budget. A future
// created with it expires roughly 292 years after construction.
const Unbounded = time.Duration(math.MaxInt64)

// config holds the assembled settings for promises and executors.
type config struct {
	// Timeout is the lifetime budget of a future: its deadline is the
	// creation instant plus Timeout. Zero means created already expired.
	// Default: 5s.
	Timeout time.Duration

	// Clock supplies instants for deadline bookkeeping.
	// Default: SystemClock.
	Clock Clock

	// Sink receives errors that cannot flow through an outcome.
	// Default: structured error logging to stderr.
	Sink ErrorSink

	// MaxWorkers caps the executor's worker pool size.
	// Zero (default) means the pool grows and shrinks dynamically.
	MaxWorkers uint

	// Metrics receives the executor's execution events.
	// Default: metrics.Nop.
	Metrics metrics.Recorder
}

// validateConfig performs lightweight invariant checks.
// All currently representable states are valid; reserved for expansion.
func validateConfig(cfg *config) error {
	// Timeout is non-negative by construction (WithTimeout rejects negatives).
	// MaxWorkers == 0 -> dynamic pool; >0 -> fixed-size pool.
	return nil
}
