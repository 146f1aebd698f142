package scalar

import (
	"errors"
	"fmt"

	"github.com/scalarlab/scalar/internal"
)

// ErrUnknownArchitecture is returned when the native byte-order probe
// observes neither a little- nor a big-endian byte layout. It is
// unreachable on any conventional architecture.
var ErrUnknownArchitecture = internal.ErrUnknownArchitecture

// ErrConversionIndeterminate is returned by casting operations which needed
// to resolve the machine's byte order but could not. Use [errors.Is] to
// test for it; the underlying cause is wrapped.
var ErrConversionIndeterminate = errors.New("conversion indeterminate")

func indeterminate(err error) error {
	return fmt.Errorf("%w: %w", ErrConversionIndeterminate, err)
}
