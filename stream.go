package scalar

import (
	"fmt"
	"io"

	"github.com/scalarlab/scalar/internal"
)

// FromStream reads a single value of type T from r and wraps it as
// Native.
//
// Exactly the size of T in bytes is consumed. Reads are all or nothing:
// on a short read or any other error no partial value is returned.
func FromStream[T Scalar](r io.Reader) (Endian[T], error) {
	var value T
	if _, err := io.ReadFull(r, internal.BackingBytes(&value)); err != nil {
		return Endian[T]{}, fmt.Errorf("read %T: %w", value, err)
	}
	return Native(value), nil
}
