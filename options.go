package akka

import (
	"time"

	"github.com/sajmmon/akka/metrics"
)

// Option configures promises, completed futures, and executors. Options that
// do not apply to the entity being built are ignored by it (an executor has
// no deadline; a promise has no pool).
type Option func(*configOptions)

// internal builder state for options assembly.
type configOptions struct {
	cfg          config
	poolSelected poolType
}

type poolType int

const (
	poolUnspecified poolType = iota
	poolDynamic
	poolFixed
)

// WithTimeout sets the future's lifetime budget: the deadline is the
// creation instant plus d. Zero creates an already-expired future; pass
// Unbounded for an effectively unlimited wait. d must not be negative.
func WithTimeout(d time.Duration) Option {
	return func(co *configOptions) {
		if d < 0 {
			panic("WithTimeout requires d >= 0")
		}
		co.cfg.Timeout = d
	}
}

// WithClock sets the instant source used for deadline bookkeeping.
func WithClock(c Clock) Option {
	return func(co *configOptions) {
		if c == nil {
			panic("WithClock requires a non-nil clock")
		}
		co.cfg.Clock = c
	}
}

// WithErrorSink sets the sink receiving listener panics and other errors
// that cannot flow through an outcome.
func WithErrorSink(s ErrorSink) Option {
	return func(co *configOptions) {
		if s == nil {
			panic("WithErrorSink requires a non-nil sink")
		}
		co.cfg.Sink = s
	}
}

// WithFixedPool selects a fixed-size worker pool for the executor with the
// given capacity (must be > 0).
func WithFixedPool(n uint) Option {
	return func(co *configOptions) {
		if co.poolSelected != poolUnspecified && co.poolSelected != poolFixed {
			panic("conflicting pool options: WithFixedPool and WithDynamicPool both specified")
		}
		if n == 0 {
			panic("WithFixedPool requires n > 0")
		}
		co.poolSelected = poolFixed
		co.cfg.MaxWorkers = n
	}
}

// WithDynamicPool selects a dynamic-size worker pool for the executor (the
// default if no pool option is provided).
func WithDynamicPool() Option {
	return func(co *configOptions) {
		if co.poolSelected != poolUnspecified && co.poolSelected != poolDynamic {
			panic("conflicting pool options: WithFixedPool and WithDynamicPool both specified")
		}
		co.poolSelected = poolDynamic
		co.cfg.MaxWorkers = 0
	}
}

// WithMetrics sets the recorder receiving the executor's execution events.
func WithMetrics(r metrics.Recorder) Option {
	return func(co *configOptions) {
		if r == nil {
			panic("WithMetrics requires a non-nil recorder")
		}
		co.cfg.Metrics = r
	}
}

// buildConfig assembles a config from defaults plus opts.
func buildConfig(opts []Option) config {
	co := configOptions{cfg: defaultConfig(), poolSelected: poolUnspecified}
	for _, opt := range opts {
		if opt == nil {
			panic("nil option")
		}
		opt(&co)
	}

	if co.poolSelected == poolUnspecified {
		co.poolSelected = poolDynamic
		co.cfg.MaxWorkers = 0
	}

	return co.cfg
}
