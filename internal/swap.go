package internal

import (
	"slices"
	"unsafe"
)

// Scalar represents the fixed-size payload types a byte-order tag can carry.
//
// The empty struct is included so that a bare tag can be expressed as a
// tagged value without a payload.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~struct{}
}

// BackingBytes returns the memory backing *v as a byte slice.
//
// The slice covers exactly unsafe.Sizeof(*v) bytes. Writing to it
// modifies *v.
func BackingBytes[T Scalar](v *T) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(v)), unsafe.Sizeof(*v))
}

// SwapBytes returns a copy of value with its byte sequence reversed.
//
// The operation is purely a permutation of the value's memory, it has no
// numeric meaning. value is taken by copy, the caller's instance is never
// modified.
func SwapBytes[T Scalar](value T) T {
	slices.Reverse(BackingBytes(&value))
	return value
}
