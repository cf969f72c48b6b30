package akka

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFirstCompletedOf_CompletedInputWins(t *testing.T) {
	never := NewPromise[int](WithTimeout(time.Hour))
	fs := []Future[int]{never, Successful(7)}

	o, ok := FirstCompletedOf(fs, WithTimeout(time.Second)).Value()
	require.True(t, ok)
	require.Equal(t, 7, o.Value())
}

func TestFirstCompletedOf_FirstFailureWinsToo(t *testing.T) {
	errFirst := errors.New("first")
	never := NewPromise[int](WithTimeout(time.Hour))

	f := FirstCompletedOf([]Future[int]{never, Failed[int](errFirst)})
	o, ok := f.Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), errFirst)
}

func TestFirstCompletedOf_SubsequentCompletionsIgnored(t *testing.T) {
	a := NewPromise[int](WithTimeout(time.Second))
	b := NewPromise[int](WithTimeout(time.Second))

	f := FirstCompletedOf([]Future[int]{a, b})
	a.Complete(Success(1))
	b.Complete(Success(2))

	o, _ := f.Value()
	require.Equal(t, 1, o.Value())
}

func TestFold_SumsSuccesses(t *testing.T) {
	fs := []Future[int]{Successful(1), Successful(2), Successful(3)}

	f := Fold(0, fs, func(acc, v int) (int, error) { return acc + v, nil },
		WithTimeout(time.Second))

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.Equal(t, 6, o.Value())
}

func TestFold_FirstFailureWins(t *testing.T) {
	errMid := errors.New("mid")
	opCalled := false
	fs := []Future[int]{Successful(1), Failed[int](errMid), Successful(3)}

	f := Fold(0, fs, func(acc, v int) (int, error) { opCalled = true; return acc + v, nil },
		WithTimeout(time.Second))

	o, ok := f.Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), errMid)
	require.False(t, opCalled, "no arithmetic may happen once a failure settles the fold")
}

func TestFold_EmptyInputIsZero(t *testing.T) {
	f := Fold(41, nil, func(acc, v int) (int, error) { return acc + v, nil })

	o, ok := f.Value()
	require.True(t, ok)
	require.Equal(t, 41, o.Value())
}

func TestFold_AccumulatesInCompletionOrder(t *testing.T) {
	a := NewPromise[string](WithTimeout(time.Second))
	b := NewPromise[string](WithTimeout(time.Second))
	c := NewPromise[string](WithTimeout(time.Second))

	f := Fold("", []Future[string]{a, b, c},
		func(acc, v string) (string, error) { return acc + v, nil },
		WithTimeout(time.Second))

	// completion order c, a, b — deterministic, all from this goroutine
	c.Complete(Success("c"))
	a.Complete(Success("a"))
	b.Complete(Success("b"))

	o, ok := f.Value()
	require.True(t, ok)
	require.Equal(t, "cab", o.Value())
}

func TestFold_OpErrorFailsTheResult(t *testing.T) {
	errOp := errors.New("op rejected")
	fs := []Future[int]{Successful(1), Successful(2)}

	f := Fold(0, fs, func(acc, v int) (int, error) { return 0, errOp })

	o, _ := f.Value()
	require.ErrorIs(t, o.Err(), errOp)
}

func TestFold_OpPanicFailsTheResult(t *testing.T) {
	fs := []Future[int]{Successful(1)}

	f := Fold(0, fs, func(int, int) (int, error) { panic("op blew up") })

	o, _ := f.Value()
	require.ErrorIs(t, o.Err(), ErrTaskPanicked)
}

func TestReduce_FirstCompletedSeedsTheFold(t *testing.T) {
	maxOp := func(a, b int) (int, error) {
		if b > a {
			return b, nil
		}
		return a, nil
	}
	fs := []Future[int]{Successful(2), Successful(3), Successful(4)}

	o, ok := Reduce(fs, maxOp, WithTimeout(time.Second)).AwaitValue()
	require.True(t, ok)
	require.Equal(t, 4, o.Value())
}

func TestReduce_EmptyInputFails(t *testing.T) {
	o, ok := Reduce(nil, func(a, b int) (int, error) { return a + b, nil }).Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), ErrEmptyReduce)
}

func TestReduce_SeedFailurePropagates(t *testing.T) {
	errSeed := errors.New("seed broke")
	never := NewPromise[int](WithTimeout(time.Hour))

	f := Reduce([]Future[int]{Failed[int](errSeed), never},
		func(a, b int) (int, error) { return a + b, nil })

	o, ok := f.Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), errSeed)
}

func TestReduce_PendingInputs(t *testing.T) {
	a := NewPromise[int](WithTimeout(time.Second))
	b := NewPromise[int](WithTimeout(time.Second))

	f := Reduce([]Future[int]{a, b},
		func(x, y int) (int, error) { return x * y, nil },
		WithTimeout(time.Second))

	b.Complete(Success(5)) // seed
	a.Complete(Success(6))

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.Equal(t, 30, o.Value())
}

func TestSequence_PreservesInputOrder(t *testing.T) {
	fs := []Future[string]{Successful("a"), Successful("b"), Successful("c")}

	o, ok := Sequence(fs, WithTimeout(time.Second)).Value()
	require.True(t, ok)
	require.Equal(t, []string{"a", "b", "c"}, o.Value())
}

func TestSequence_OrderIndependentOfCompletionOrder(t *testing.T) {
	a := NewPromise[int](WithTimeout(time.Second))
	b := NewPromise[int](WithTimeout(time.Second))
	c := NewPromise[int](WithTimeout(time.Second))

	f := Sequence([]Future[int]{a, b, c}, WithTimeout(time.Second))

	c.Complete(Success(3))
	b.Complete(Success(2))
	a.Complete(Success(1))

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.Equal(t, []int{1, 2, 3}, o.Value())
}

func TestSequence_FailureShortCircuits(t *testing.T) {
	errBad := errors.New("bad element")
	fs := []Future[int]{Successful(1), Failed[int](errBad), Successful(3)}

	o, ok := Sequence(fs, WithTimeout(time.Second)).AwaitValue()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), errBad)
}

func TestSequence_EmptyInput(t *testing.T) {
	o, ok := Sequence[int](nil).Value()
	require.True(t, ok)
	require.True(t, o.IsSuccess())
	require.Empty(t, o.Value())
}

func TestTraverse(t *testing.T) {
	items := []int{1, 2, 3}

	f := Traverse(items, func(v int) Future[int] {
		return Successful(v * v)
	}, WithTimeout(time.Second))

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.Equal(t, []int{1, 4, 9}, o.Value())
}

func TestTraverse_NilFutureFails(t *testing.T) {
	f := Traverse([]int{1}, func(int) Future[int] { return nil })

	o, ok := f.Value()
	require.True(t, ok)
	require.True(t, o.IsFailure())
}
