package scalar

import (
	"encoding/binary"
	"fmt"

	"github.com/scalarlab/scalar/internal"
)

// Scalar is the set of payload types an [Endian] can carry: fixed-size,
// copyable integer scalars, plus [Unit] for bare byte-order tags.
type Scalar = internal.Scalar

// Unit is the empty payload of a bare byte-order tag.
type Unit = struct{}

// Order is a byte-order tag without an associated value. It is used to
// request a target byte order from [Endian.Cast] and returned by [Detect].
type Order = Endian[Unit]

// The three possible byte-order tags.
var (
	LittleOrder = Little(Unit{})
	BigOrder    = Big(Unit{})
	NativeOrder = Native(Unit{})
)

type order uint8

// The zero value deliberately maps to Native so that a zero Endian[T] is
// Native(0), the same state New produces for a zero payload.
const (
	orderNative order = iota
	orderLittle
	orderBig
)

// Endian wraps a scalar value together with the byte order it is stored
// in. Exactly one of the Little, Big and Native tags is active at any
// time.
//
// Endian is an immutable value type: casting operations return plain
// scalars and never modify the receiver. It is comparable, and safe for
// concurrent use.
type Endian[T Scalar] struct {
	order order
	value T
}

// New wraps value as Native. This is the default entry point for values
// that were produced in host byte order and whose final interpretation is
// not yet decided.
func New[T Scalar](value T) Endian[T] {
	return Native(value)
}

// Little wraps a value known to be in little-endian byte order.
func Little[T Scalar](value T) Endian[T] {
	return Endian[T]{orderLittle, value}
}

// Big wraps a value known to be in big-endian byte order.
func Big[T Scalar](value T) Endian[T] {
	return Endian[T]{orderBig, value}
}

// Native wraps a value stored in whatever byte order the machine uses.
// The concrete order is intentionally not resolved until a cast asks
// for it.
func Native[T Scalar](value T) Endian[T] {
	return Endian[T]{orderNative, value}
}

// IsLittle returns true if the Little tag is active.
func (e Endian[T]) IsLittle() bool { return e.order == orderLittle }

// IsBig returns true if the Big tag is active.
func (e Endian[T]) IsBig() bool { return e.order == orderBig }

// IsNative returns true if the Native tag is active.
func (e Endian[T]) IsNative() bool { return e.order == orderNative }

// Order returns e's byte-order tag without its value.
func (e Endian[T]) Order() Order {
	return Order{order: e.order}
}

// probeOrder resolves the machine's byte order for casts. It is a variable
// so tests can exercise the failure branches, which are unreachable on
// real hardware.
var probeOrder = internal.NativeByteOrder

// resolveNative maps the probed machine byte order onto a tag. A probe
// result that is neither LittleEndian nor BigEndian cannot be resolved
// further and is rejected.
func resolveNative() (order, error) {
	bo, err := probeOrder()
	if err != nil {
		return orderNative, err
	}
	switch bo {
	case binary.LittleEndian:
		return orderLittle, nil
	case binary.BigEndian:
		return orderBig, nil
	default:
		return orderNative, fmt.Errorf("probe returned non-absolute byte order %v", bo)
	}
}

// Detect returns the byte order of the running machine as an [Order] tag,
// either [LittleOrder] or [BigOrder]. The result is probed at runtime and
// stable for the lifetime of the process.
func Detect() (Order, error) {
	no, err := resolveNative()
	if err != nil {
		return Order{}, err
	}
	return Order{order: no}, nil
}

// AsLittle returns the payload converted to little-endian byte order.
//
// It fails only if the Native tag is active and the machine's byte order
// cannot be determined, which is unreachable on supported architectures.
func (e Endian[T]) AsLittle() (T, error) {
	switch e.order {
	case orderLittle:
		return e.value, nil
	case orderBig:
		return internal.SwapBytes(e.value), nil
	default:
		no, err := resolveNative()
		if err != nil {
			var zero T
			return zero, indeterminate(err)
		}
		if no == orderLittle {
			return e.value, nil
		}
		return internal.SwapBytes(e.value), nil
	}
}

// AsBig returns the payload converted to big-endian byte order.
//
// It fails only if the Native tag is active and the machine's byte order
// cannot be determined, which is unreachable on supported architectures.
func (e Endian[T]) AsBig() (T, error) {
	switch e.order {
	case orderBig:
		return e.value, nil
	case orderLittle:
		return internal.SwapBytes(e.value), nil
	default:
		no, err := resolveNative()
		if err != nil {
			var zero T
			return zero, indeterminate(err)
		}
		if no == orderBig {
			return e.value, nil
		}
		return internal.SwapBytes(e.value), nil
	}
}

// AsNative returns the payload converted to the machine's byte order.
//
// A Native-tagged payload is returned unchanged: by construction it is
// already in whatever order the machine uses. Little- and Big-tagged
// payloads consult the machine's byte order and are reversed if it
// differs.
func (e Endian[T]) AsNative() (T, error) {
	if e.order == orderNative {
		return e.value, nil
	}
	no, err := resolveNative()
	if err != nil {
		var zero T
		return zero, indeterminate(err)
	}
	if no == e.order {
		return e.value, nil
	}
	return internal.SwapBytes(e.value), nil
}

// Cast converts the payload to the byte order named by to. It is the
// recommended entry point when the target byte order is held as data, for
// example when a file header decides the order of the values that follow.
func (e Endian[T]) Cast(to Order) (T, error) {
	switch {
	case to.IsLittle():
		return e.AsLittle()
	case to.IsBig():
		return e.AsBig()
	default:
		return e.AsNative()
	}
}

// Unpack returns the payload in the machine's byte order, substituting
// the zero value of T if the conversion fails.
//
// The failure case is unreachable on supported architectures, but callers
// for whom silently reading a zero would be data corruption should use
// [Endian.AsNative] or [Endian.Cast] and check the error instead.
func (e Endian[T]) Unpack() T {
	value, _ := e.AsNative()
	return value
}

// ByteOrder returns the [binary.ByteOrder] matching e's tag, resolving
// Native through the machine probe. It allows tagged values to
// interoperate with code built on [encoding/binary].
func (e Endian[T]) ByteOrder() (binary.ByteOrder, error) {
	switch e.order {
	case orderLittle:
		return binary.LittleEndian, nil
	case orderBig:
		return binary.BigEndian, nil
	default:
		return probeOrder()
	}
}

// String renders the active tag and payload, eg "Little(42)". Bare
// [Order] tags render without a payload.
func (e Endian[T]) String() string {
	name := "Native"
	switch e.order {
	case orderLittle:
		name = "Little"
	case orderBig:
		name = "Big"
	}
	if _, bare := any(e.value).(Unit); bare {
		return name
	}
	return fmt.Sprintf("%s(%v)", name, e.value)
}
