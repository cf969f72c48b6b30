package akka

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// inlineScheduler runs thunks synchronously on the submitting goroutine.
type inlineScheduler struct{}

func (inlineScheduler) Submit(thunk func()) { thunk() }

func TestSchedulerFunc_Adapts(t *testing.T) {
	ran := false
	s := SchedulerFunc(func(thunk func()) { thunk() })
	s.Submit(func() { ran = true })
	require.True(t, ran)
}

func TestSubmit_Success(t *testing.T) {
	f := Submit(inlineScheduler{}, func() (int, error) { return 42, nil },
		WithTimeout(time.Second))

	o, ok := f.Value()
	require.True(t, ok)
	require.Equal(t, 42, o.Value())
}

func TestSubmit_BodyError(t *testing.T) {
	errBody := errors.New("body failed")
	f := Submit(inlineScheduler{}, func() (int, error) { return 0, errBody })

	o, ok := f.Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), errBody)
}

func TestSubmit_BodyPanicBecomesFailure(t *testing.T) {
	f := Submit(inlineScheduler{}, func() (int, error) { panic("worker boom") })

	o, ok := f.Value()
	require.True(t, ok)
	require.ErrorIs(t, o.Err(), ErrTaskPanicked)
}

func TestSubmit_GoScheduler(t *testing.T) {
	f := Submit(GoScheduler{}, func() (string, error) {
		return "async", nil
	}, WithTimeout(time.Second))

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.Equal(t, "async", o.Value())
}
