package akka

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCompleted_ReadSurface(t *testing.T) {
	f := Successful(42)

	require.True(t, f.IsCompleted())
	require.True(t, f.IsExpired())
	require.Equal(t, time.Duration(0), f.Remaining())

	o, ok := f.Value()
	require.True(t, ok)
	require.Equal(t, 42, o.Value())
}

func TestCompleted_WaitsReturnImmediately(t *testing.T) {
	f := Failed[int](errors.New("broken"))

	start := time.Now()

	g, err := f.Await()
	require.NoError(t, err) // completion beats expiry, always
	require.Same(t, f, g)

	require.Same(t, f, f.AwaitBlocking())

	o, ok := f.AwaitValue()
	require.True(t, ok)
	require.True(t, o.IsFailure())

	o, ok = f.ValueWithin(time.Hour)
	require.True(t, ok)
	require.True(t, o.IsFailure())

	require.Less(t, time.Since(start), time.Second)
}

func TestCompleted_CompleteIsNoOp(t *testing.T) {
	f := Successful("kept")
	f.Complete(Success("discarded"))
	f.CompleteWith(Successful("also discarded"))

	o, _ := f.Value()
	require.Equal(t, "kept", o.Value())
}

func TestCompleted_ListenerFiresInline(t *testing.T) {
	f := Successful(1)

	fired := false
	f.OnComplete(func(g Future[int]) {
		o, ok := g.Value()
		require.True(t, ok)
		require.Equal(t, 1, o.Value())
		fired = true
	})
	require.True(t, fired)
}

func TestCompleted_ListenerPanicGoesToSink(t *testing.T) {
	sink := &captureSink{}
	f := Successful(1, WithErrorSink(sink))

	g := f.OnComplete(func(Future[int]) { panic("boom") })
	require.Equal(t, 1, sink.len())

	// the future stays chainable after a panicking listener
	require.Same(t, f, g)
	require.True(t, g.IsCompleted())
}
