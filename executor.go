package akka

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/sajmmon/akka/metrics"
	"github.com/sajmmon/akka/pool"
)

// Executor is the pooled Scheduler: each submitted thunk runs on a worker
// taken from a dynamic or fixed-size pool, on its own goroutine. In-flight
// thunks are tracked so Close can wait for them.
type Executor struct {
	cfg  config
	pool pool.Pool

	inflight  sync.WaitGroup
	closed    atomic.Bool
	closeOnce sync.Once

	rec metrics.Recorder
}

var _ Scheduler = (*Executor)(nil)

// NewExecutor creates an Executor configured by opts. WithFixedPool caps
// concurrently executing workers; the default dynamic pool grows and
// shrinks as needed.
func NewExecutor(opts ...Option) (*Executor, error) {
	cfg := buildConfig(opts)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	var p pool.Pool
	if cfg.MaxWorkers > 0 {
		p = pool.NewFixed(cfg.MaxWorkers, newWorker)
	} else {
		p = pool.NewDynamic(newWorker)
	}

	return &Executor{
		cfg:  cfg,
		pool: p,
		rec:  cfg.Metrics,
	}, nil
}

// Submit schedules thunk on a pooled worker. After Close, the thunk is
// dropped and the drop is reported to the error sink; the port is
// fire-and-forget, so there is no error return to carry the rejection.
func (e *Executor) Submit(thunk func()) {
	e.inflight.Add(1)
	if e.closed.Load() {
		e.inflight.Done()
		e.cfg.Sink.Report(ErrSchedulerClosed, "executor", "thunk rejected after close")
		return
	}
	e.rec.Submitted()

	go func() {
		defer e.inflight.Done()
		w := e.pool.Get().(*worker)
		e.rec.Started()

		start := e.cfg.Clock.Now()
		if recovered := w.execute(thunk); recovered != nil {
			e.rec.Panicked()
			e.cfg.Sink.Report(
				fmt.Errorf("%w: %v", ErrTaskPanicked, recovered),
				"executor",
				"thunk panicked",
			)
		}
		e.pool.Put(w)
		e.rec.Finished(e.cfg.Clock.Now().Sub(start))
	}()
}

// Close stops accepting thunks and waits for in-flight ones to finish.
// Safe for concurrent calls; the shutdown sequence runs exactly once.
func (e *Executor) Close() {
	e.closeOnce.Do(func() {
		e.closed.Store(true)
		e.inflight.Wait()
	})
}
