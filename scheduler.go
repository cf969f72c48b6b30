package akka

// Scheduler is the submission port: it accepts a thunk and runs it at some
// later point on some goroutine. The future core depends on nothing else
// about the runner; Executor is the pooled implementation shipped here, and
// any dispatcher can satisfy the port.
type Scheduler interface {
	Submit(thunk func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(thunk func())

func (s SchedulerFunc) Submit(thunk func()) { s(thunk) }

// GoScheduler runs every thunk on its own goroutine, unpooled.
type GoScheduler struct{}

func (GoScheduler) Submit(thunk func()) { go thunk() }

// Submit runs body on s and returns a future that resolves with body's
// result. An error returned by body, or a panic recovered from it, resolves
// the future with a failure.
func Submit[T any](s Scheduler, body func() (T, error), opts ...Option) Future[T] {
	p := NewPromise[T](opts...)
	s.Submit(func() {
		p.Complete(outcomeOf(body))
	})
	return p
}
