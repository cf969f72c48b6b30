package akka

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOutcome_SuccessAndFailure(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name        string
		outcome     Outcome[int]
		wantSuccess bool
		wantValue   int
		wantErr     error
	}{
		{
			name:        "success holds value",
			outcome:     Success(7),
			wantSuccess: true,
			wantValue:   7,
		},
		{
			name:        "failure holds error and zero value",
			outcome:     Failure[int](errBoom),
			wantSuccess: false,
			wantValue:   0,
			wantErr:     errBoom,
		},
		{
			name:        "zero value is a zero success",
			outcome:     Outcome[int]{},
			wantSuccess: true,
			wantValue:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.wantSuccess, tt.outcome.IsSuccess())
			require.Equal(t, !tt.wantSuccess, tt.outcome.IsFailure())
			require.Equal(t, tt.wantValue, tt.outcome.Value())
			require.Equal(t, tt.wantErr, tt.outcome.Err())

			v, err := tt.outcome.Get()
			require.Equal(t, tt.wantValue, v)
			require.Equal(t, tt.wantErr, err)
		})
	}
}

func TestOutcome_FailureRequiresError(t *testing.T) {
	require.Panics(t, func() { Failure[string](nil) })
}
