// Package errs defines the sentinel errors returned by cardinal packages.
//
// Errors are wrapped with additional context using fmt.Errorf and %w, so
// callers should compare with errors.Is rather than by equality:
//
//	est, err := hll.New(p)
//	if errors.Is(err, errs.ErrInvalidArgument) {
//	    // reject the configuration
//	}
package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of all argument validation failures.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrInvalidPrecision is returned when an estimator precision falls outside [4, 18].
	ErrInvalidPrecision = fmt.Errorf("%w: precision out of range", ErrInvalidArgument)

	// ErrUnknownCompression is returned for an unsupported compression type or name.
	ErrUnknownCompression = fmt.Errorf("%w: unknown compression type", ErrInvalidArgument)

	// ErrInvalidOption is returned when a harness option carries an unusable value.
	ErrInvalidOption = fmt.Errorf("%w: invalid option", ErrInvalidArgument)
)

// ErrSnapshotMismatch is returned when a compressed register snapshot does not
// decompress to the original bytes.
var ErrSnapshotMismatch = errors.New("snapshot round trip mismatch")
