package akka

import (
	"fmt"
	"time"
)

// completed is the immutable, pre-resolved future. Its outcome is present
// from construction, its lifetime budget is zero, and it is always expired.
// Listeners fire inline at registration; every wait returns immediately.
// It serves as the identity element in aggregators (fold over empty input).
type completed[T any] struct {
	outcome Outcome[T]
	clock   Clock
	sink    ErrorSink
}

var _ Future[int] = (*completed[int])(nil)

// Completed returns a future already resolved with o.
func Completed[T any](o Outcome[T], opts ...Option) Future[T] {
	cfg := buildConfig(opts)
	return &completed[T]{outcome: o, clock: cfg.Clock, sink: cfg.Sink}
}

// Successful returns a future already resolved with Success(v).
func Successful[T any](v T, opts ...Option) Future[T] {
	return Completed(Success(v), opts...)
}

// Failed returns a future already resolved with Failure(err).
func Failed[T any](err error, opts ...Option) Future[T] {
	return Completed(Failure[T](err), opts...)
}

// Complete is a no-op: the outcome was fixed at construction.
func (c *completed[T]) Complete(Outcome[T]) Future[T] { return c }

// CompleteWith is a no-op: the outcome was fixed at construction.
func (c *completed[T]) CompleteWith(Future[T]) Future[T] { return c }

func (c *completed[T]) Value() (Outcome[T], bool) { return c.outcome, true }

func (c *completed[T]) IsCompleted() bool { return true }

func (c *completed[T]) IsExpired() bool { return true }

func (c *completed[T]) Remaining() time.Duration { return 0 }

func (c *completed[T]) Await() (Future[T], error) { return c, nil }

func (c *completed[T]) AwaitBlocking() Future[T] { return c }

func (c *completed[T]) AwaitValue() (Outcome[T], bool) { return c.outcome, true }

func (c *completed[T]) ValueWithin(time.Duration) (Outcome[T], bool) { return c.outcome, true }

// OnComplete invokes fn inline on the calling goroutine.
func (c *completed[T]) OnComplete(fn func(Future[T])) Future[T] {
	c.invoke(fn)
	return c
}

// invoke runs a listener with the panic guard; listener panics go to the
// sink and never unwind past the registration call.
func (c *completed[T]) invoke(fn func(Future[T])) {
	defer func() {
		if r := recover(); r != nil {
			c.sink.Report(
				fmt.Errorf("%w: %v", ErrListenerPanicked, r),
				"future",
				"completion listener panicked",
			)
		}
	}()
	fn(c)
}

func (c *completed[T]) deriveOptions() []Option {
	return []Option{
		WithTimeout(0),
		WithClock(c.clock),
		WithErrorSink(c.sink),
	}
}

func (c *completed[T]) errorSink() ErrorSink { return c.sink }
