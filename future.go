package akka

import (
	"fmt"
	"sync"
	"time"
)

// Future is the read surface of an asynchronous result: a single-assignment
// cell that will eventually hold an Outcome. It is implemented by *Promise
// (the writable cell) and by the pre-completed futures returned by
// Completed, Successful, and Failed.
//
// Listeners run on the goroutine that completes the future (or inline at
// registration if it is already complete) and delay sibling listeners on the
// same future until they return; keep them short and never block in one.
type Future[T any] interface {
	// Complete resolves the future with o and returns the future. If the
	// future is already complete the call is a no-op: the first completion
	// wins and subsequent ones are discarded.
	Complete(o Outcome[T]) Future[T]

	// CompleteWith arranges for the future to complete with other's outcome
	// once other completes. A no-op if the future completes first.
	CompleteWith(other Future[T]) Future[T]

	// Value returns the current outcome, if any, without blocking.
	Value() (Outcome[T], bool)

	// IsCompleted reports whether an outcome is present.
	IsCompleted() bool

	// IsExpired reports whether the deadline has passed. Expiry does not
	// prevent completion: a late Complete still resolves the future and
	// still notifies listeners.
	IsExpired() bool

	// Await blocks until completion or the deadline, whichever comes first,
	// and returns the future with a nil error on completion or an
	// ErrTimeout-wrapped error at the deadline.
	Await() (Future[T], error)

	// AwaitBlocking blocks until completion, ignoring the deadline.
	AwaitBlocking() Future[T]

	// AwaitValue blocks until completion or the deadline and returns the
	// outcome; absence means the wait timed out.
	AwaitValue() (Outcome[T], bool)

	// ValueWithin blocks for at most min(d, time remaining to the deadline)
	// and returns the outcome, if present by then.
	ValueWithin(d time.Duration) (Outcome[T], bool)

	// OnComplete registers fn to run exactly once with the completed future.
	// Registered before completion, fn runs on the completing goroutine;
	// after, it runs inline on the calling goroutine. Listeners fire in
	// registration order. A panic in fn is reported to the error sink and
	// does not disturb other listeners.
	OnComplete(fn func(Future[T])) Future[T]

	// Remaining returns the time left until the deadline, zero if passed.
	Remaining() time.Duration

	// deriveOptions carries the remaining lifetime, clock, and sink into a
	// future derived by a combinator.
	deriveOptions() []Option

	// errorSink exposes the sink side-effect combinators report into.
	errorSink() ErrorSink
}

// Promise is the writable future: a mutable single-assignment cell with a
// deadline and completion listeners. Create one with NewPromise, resolve it
// with Complete or CompleteWith, and hand it out as a Future.
type Promise[T any] struct {
	cfg      config
	deadline time.Time

	mu        sync.Mutex // guards outcome, completed, listeners
	outcome   Outcome[T]
	completed bool
	listeners []func(Future[T])
	done      chan struct{} // closed on completion; wakes all awaiters
}

var _ Future[int] = (*Promise[int])(nil)

// NewPromise creates an incomplete future whose deadline is the current
// instant plus the configured timeout (default 5s; see WithTimeout).
func NewPromise[T any](opts ...Option) *Promise[T] {
	cfg := buildConfig(opts)
	return &Promise[T]{
		cfg:      cfg,
		deadline: cfg.Clock.Now().Add(cfg.Timeout),
		done:     make(chan struct{}),
	}
}

// Complete resolves the promise with o. The first call wins; later calls
// are no-ops. Listeners registered so far are snapshotted under the lock and
// invoked after it is released, in registration order, on this goroutine.
func (p *Promise[T]) Complete(o Outcome[T]) Future[T] {
	p.mu.Lock()
	if p.completed {
		p.mu.Unlock()
		return p
	}
	p.outcome = o
	p.completed = true
	ls := p.listeners
	p.listeners = nil
	close(p.done)
	p.mu.Unlock()

	for _, fn := range ls {
		p.invoke(fn)
	}
	return p
}

// CompleteWith resolves the promise with other's outcome once other
// completes. If the promise is already complete, nothing is registered.
func (p *Promise[T]) CompleteWith(other Future[T]) Future[T] {
	if p.IsCompleted() {
		return p
	}
	other.OnComplete(func(f Future[T]) {
		o, _ := f.Value()
		p.Complete(o)
	})
	return p
}

// Value returns the outcome, if present, without blocking.
func (p *Promise[T]) Value() (Outcome[T], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.outcome, p.completed
}

// IsCompleted reports whether the promise has been resolved.
func (p *Promise[T]) IsCompleted() bool {
	select {
	case <-p.done:
		return true
	default:
		return false
	}
}

// IsExpired reports whether the deadline has passed.
func (p *Promise[T]) IsExpired() bool {
	return !p.cfg.Clock.Now().Before(p.deadline)
}

// Remaining returns the time left until the deadline, zero if passed.
func (p *Promise[T]) Remaining() time.Duration {
	r := p.deadline.Sub(p.cfg.Clock.Now())
	if r < 0 {
		return 0
	}
	return r
}

// Await blocks until completion or the deadline. On completion it returns
// the promise and a nil error; at the deadline it returns an error wrapping
// ErrTimeout. A completed promise never times out, even past its deadline.
func (p *Promise[T]) Await() (Future[T], error) {
	if p.waitFor(p.Remaining()) {
		return p, nil
	}
	return p, fmt.Errorf("%w after %v", ErrTimeout, p.cfg.Timeout)
}

// AwaitBlocking blocks until completion, ignoring the deadline.
func (p *Promise[T]) AwaitBlocking() Future[T] {
	<-p.done
	return p
}

// AwaitValue blocks until completion or the deadline and returns the
// outcome; absence means the wait timed out.
func (p *Promise[T]) AwaitValue() (Outcome[T], bool) {
	p.waitFor(p.Remaining())
	return p.Value()
}

// ValueWithin blocks for at most min(d, Remaining()) and returns the
// outcome, if present by then.
func (p *Promise[T]) ValueWithin(d time.Duration) (Outcome[T], bool) {
	if r := p.Remaining(); r < d {
		d = r
	}
	p.waitFor(d)
	return p.Value()
}

// waitFor blocks up to d for completion and reports whether the promise is
// complete when it returns.
func (p *Promise[T]) waitFor(d time.Duration) bool {
	if p.IsCompleted() {
		return true
	}
	if d <= 0 {
		return false
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-p.done:
		return true
	case <-t.C:
		// completion may have raced the timer
		return p.IsCompleted()
	}
}

// OnComplete registers fn per the Future contract.
func (p *Promise[T]) OnComplete(fn func(Future[T])) Future[T] {
	p.mu.Lock()
	if !p.completed {
		p.listeners = append(p.listeners, fn)
		p.mu.Unlock()
		return p
	}
	p.mu.Unlock()
	p.invoke(fn)
	return p
}

// invoke runs a listener with the panic guard; listener panics go to the
// sink so the notification loop survives.
func (p *Promise[T]) invoke(fn func(Future[T])) {
	defer func() {
		if r := recover(); r != nil {
			p.cfg.Sink.Report(
				fmt.Errorf("%w: %v", ErrListenerPanicked, r),
				"future",
				"completion listener panicked",
			)
		}
	}()
	fn(p)
}

func (p *Promise[T]) deriveOptions() []Option {
	return []Option{
		WithTimeout(p.Remaining()),
		WithClock(p.cfg.Clock),
		WithErrorSink(p.cfg.Sink),
	}
}

func (p *Promise[T]) errorSink() ErrorSink { return p.cfg.Sink }
