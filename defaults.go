package akka

import (
	"time"

	"github.com/sajmmon/akka/metrics"
)

// defaultTimeout is the lifetime budget applied when WithTimeout is absent.
// It matches the runtime's default ask timeout.
const defaultTimeout = 5 * time.Second

// defaultConfig centralizes default values for config.
// Applied as the builder base by NewPromise, Completed, Submit, and NewExecutor.
func defaultConfig() config {
	return config{
		Timeout:    defaultTimeout,
		Clock:      SystemClock,
		Sink:       defaultSink,
		MaxWorkers: 0, // dynamic pool
		Metrics:    metrics.Nop{},
	}
}
