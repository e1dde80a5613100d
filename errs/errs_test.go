package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelsWrapInvalidArgument(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"precision", ErrInvalidPrecision},
		{"compression", ErrUnknownCompression},
		{"option", ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, ErrInvalidArgument)

			wrapped := fmt.Errorf("%w: got 19", tt.err)
			require.ErrorIs(t, wrapped, tt.err)
			require.ErrorIs(t, wrapped, ErrInvalidArgument)
		})
	}
}

func TestSentinelsAreDistinct(t *testing.T) {
	require.False(t, errors.Is(ErrInvalidPrecision, ErrUnknownCompression))
	require.False(t, errors.Is(ErrUnknownCompression, ErrInvalidOption))
	require.Contains(t, ErrInvalidPrecision.Error(), "invalid argument")
}

func TestErrSnapshotMismatch_NotAnArgumentError(t *testing.T) {
	wrapped := fmt.Errorf("%w: lz4 restored 3 of 4 bytes", ErrSnapshotMismatch)
	require.ErrorIs(t, wrapped, ErrSnapshotMismatch)
	require.NotErrorIs(t, wrapped, ErrInvalidArgument)
}
