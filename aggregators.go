package akka

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Aggregators compose a slice of futures into a single future. They attach
// listeners and never block; Complete's first-wins semantics make the
// inevitable races between inputs benign.

// FirstCompletedOf returns a future resolving to the outcome of whichever
// input completes first, success or failure. Later completions are ignored.
func FirstCompletedOf[T any](futures []Future[T], opts ...Option) Future[T] {
	result := NewPromise[T](opts...)
	for _, f := range futures {
		f.OnComplete(func(u Future[T]) {
			o, _ := u.Value()
			result.Complete(o)
		})
	}
	return result
}

// Fold returns a future resolving to the left-fold of the inputs' success
// values with op, folded in completion order, not input order: the
// aggregate makes maximal non-blocking progress, so callers whose op is not
// commutative and associative will observe nondeterministic results.
//
// The first failure observed among the inputs becomes the result, as does an
// error or panic from op. Empty input resolves immediately to zero.
func Fold[T, R any](zero R, futures []Future[T], op func(R, T) (R, error), opts ...Option) Future[R] {
	if len(futures) == 0 {
		return Completed(Success(zero), opts...)
	}

	result := NewPromise[R](opts...)
	all := len(futures)

	// Successful values accumulate in arrival order; the listener that
	// observes the last arrival folds inline on its own goroutine. A failure
	// settles the aggregate and drops the accumulated values.
	var (
		mu      sync.Mutex
		arrived []T
		settled bool
	)

	aggregate := func(u Future[T]) {
		o, _ := u.Value()

		mu.Lock()
		if settled {
			mu.Unlock()
			return
		}
		if o.IsFailure() {
			settled = true
			arrived = nil
			mu.Unlock()
			result.Complete(Failure[R](o.Err()))
			return
		}
		arrived = append(arrived, o.Value())
		if len(arrived) < all {
			mu.Unlock()
			return
		}
		settled = true
		values := arrived
		arrived = nil
		mu.Unlock()

		result.Complete(outcomeOf(func() (R, error) {
			acc := zero
			for _, v := range values {
				var err error
				if acc, err = op(acc, v); err != nil {
					return acc, err
				}
			}
			return acc, nil
		}))
	}

	for _, f := range futures {
		f.OnComplete(aggregate)
	}
	return result
}

// Reduce folds the inputs like Fold but seeds the fold with the first
// completed success instead of a caller-supplied zero; the remaining inputs
// are folded over it in completion order. If the first completion is a
// failure, it becomes the result. Empty input fails with ErrEmptyReduce.
func Reduce[T any](futures []Future[T], op func(T, T) (T, error), opts ...Option) Future[T] {
	if len(futures) == 0 {
		return Completed(Failure[T](ErrEmptyReduce), opts...)
	}

	result := NewPromise[T](opts...)

	// Only the first completion elects itself as the seed.
	var seeded atomic.Bool

	for _, f := range futures {
		f.OnComplete(func(u Future[T]) {
			if !seeded.CompareAndSwap(false, true) {
				return
			}
			o, _ := u.Value()
			if o.IsFailure() {
				result.Complete(o)
				return
			}
			rest := make([]Future[T], 0, len(futures)-1)
			for _, g := range futures {
				if g != u {
					rest = append(rest, g)
				}
			}
			result.CompleteWith(Fold(o.Value(), rest, op, opts...))
		})
	}
	return result
}

// Sequence returns a future resolving to the inputs' success values in
// input order (unlike Fold). Any failure short-circuits the result. It is
// built by left-folding the inputs into an accumulator future via
// FlatMap and Map.
func Sequence[T any](futures []Future[T], opts ...Option) Future[[]T] {
	acc := NewPromise[[]T](opts...)
	acc.Complete(Success(make([]T, 0, len(futures))))

	var chain Future[[]T] = acc
	for _, f := range futures {
		chain = FlatMap(chain, func(collected []T) (Future[[]T], error) {
			return Map(f, func(v T) ([]T, error) {
				return append(collected, v), nil
			}), nil
		})
	}
	return chain
}

// Traverse maps each item through fn and sequences the resulting futures:
// Traverse(items, fn) is Sequence applied to fn over items, resolving to
// the mapped values in input order.
func Traverse[T, R any](items []T, fn func(T) Future[R], opts ...Option) Future[[]R] {
	futures := make([]Future[R], 0, len(items))
	for _, item := range items {
		f := fn(item)
		if f == nil {
			return Failed[[]R](
				fmt.Errorf("%s: Traverse function returned a nil future", Namespace), opts...)
		}
		futures = append(futures, f)
	}
	return Sequence(futures, opts...)
}
