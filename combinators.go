package akka

import "fmt"

// Combinators derive a fresh future from an existing one by attaching a
// completion listener; none of them block. The derived future carries the
// upstream's remaining lifetime, clock, and error sink. They are free
// functions because Go methods cannot introduce type parameters.
//
// Failures flow through transparently: a failed upstream yields the same
// failure downstream, except for the side-effect combinators ForEach and
// Receive, which drop failures.

// Map derives a future resolving to fn applied to the upstream's success
// value. An error returned by fn, or a panic recovered from it, becomes the
// derived future's failure.
func Map[T, R any](f Future[T], fn func(T) (R, error)) Future[R] {
	r := NewPromise[R](f.deriveOptions()...)
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			r.Complete(Failure[R](o.Err()))
			return
		}
		r.Complete(outcomeOf(func() (R, error) { return fn(o.Value()) }))
	})
	return r
}

// FlatMap derives a future that resolves with the outcome of the future
// returned by fn. An error or panic from fn itself fails the derived future;
// a nil future from fn is treated the same way.
func FlatMap[T, R any](f Future[T], fn func(T) (Future[R], error)) Future[R] {
	r := NewPromise[R](f.deriveOptions()...)
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			r.Complete(Failure[R](o.Err()))
			return
		}
		next := outcomeOf(func() (Future[R], error) { return fn(o.Value()) })
		if next.IsFailure() {
			r.Complete(Failure[R](next.Err()))
			return
		}
		if next.Value() == nil {
			r.Complete(Failure[R](fmt.Errorf("%s: FlatMap function returned a nil future", Namespace)))
			return
		}
		r.CompleteWith(next.Value())
	})
	return r
}

// Filter derives a future that keeps the upstream's success value when pred
// accepts it and fails with ErrMatchFailure when pred rejects it. A panic in
// pred becomes the failure.
func Filter[T any](f Future[T], pred func(T) bool) Future[T] {
	r := NewPromise[T](f.deriveOptions()...)
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			r.Complete(o)
			return
		}
		v := o.Value()
		r.Complete(outcomeOf(func() (T, error) {
			if !pred(v) {
				return v, fmt.Errorf("%w: Filter rejected %v", ErrMatchFailure, v)
			}
			return v, nil
		}))
	})
	return r
}

// Collect derives a future resolving to partial applied to the upstream's
// success value. The second return of partial reports whether it is defined
// at the value; undefined yields an ErrMatchFailure failure. A panic in
// partial becomes the failure.
func Collect[T, R any](f Future[T], partial func(T) (R, bool)) Future[R] {
	r := NewPromise[R](f.deriveOptions()...)
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			r.Complete(Failure[R](o.Err()))
			return
		}
		v := o.Value()
		r.Complete(outcomeOf(func() (R, error) {
			mapped, ok := partial(v)
			if !ok {
				return mapped, fmt.Errorf("%w: Collect partial undefined at %v", ErrMatchFailure, v)
			}
			return mapped, nil
		}))
	})
	return r
}

// ForEach runs fn with the upstream's success value, for its side effects
// only. A failed upstream is ignored. A panic in fn is reported to the error
// sink and goes no further.
func ForEach[T any](f Future[T], fn func(T)) {
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			return
		}
		runSideEffect(f, "ForEach", func() { fn(o.Value()) })
	})
}

// Receive runs partial with the upstream's success value. partial reports
// whether it handled the value; an unhandled value is silently ignored, as
// is a failed upstream. A panic in partial is reported to the error sink.
func Receive[T any](f Future[T], partial func(T) bool) {
	f.OnComplete(func(u Future[T]) {
		o, _ := u.Value()
		if o.IsFailure() {
			return
		}
		runSideEffect(f, "Receive", func() { _ = partial(o.Value()) })
	})
}

// outcomeOf runs body and folds its return, error, or recovered panic into
// an Outcome.
func outcomeOf[R any](body func() (R, error)) (out Outcome[R]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[R](fmt.Errorf("%w: %v", ErrTaskPanicked, r))
		}
	}()
	v, err := body()
	if err != nil {
		return Failure[R](err)
	}
	return Success(v)
}

// runSideEffect guards a side-effect body, routing panics to the upstream's
// sink instead of the completing goroutine.
func runSideEffect[T any](f Future[T], source string, body func()) {
	defer func() {
		if r := recover(); r != nil {
			f.errorSink().Report(
				fmt.Errorf("%w: %v", ErrTaskPanicked, r),
				source,
				"side-effect callback panicked",
			)
		}
	}()
	body()
}
