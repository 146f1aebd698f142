package internal

import (
	"encoding/binary"
	"errors"
	"sync"
	"unsafe"
)

// ErrUnknownArchitecture is returned when the byte-order probe observes a
// byte layout that is neither little- nor big-endian. This cannot happen on
// any conventional architecture and exists out of an abundance of caution.
var ErrUnknownArchitecture = errors.New("unknown architecture")

var nativeByteOrder = sync.OnceValues(detectByteOrder)

// NativeByteOrder returns the byte order the running process observes for
// multi-byte scalars.
//
// The result is probed at runtime rather than selected per GOARCH, and is
// stable for the lifetime of the process.
func NativeByteOrder() (binary.ByteOrder, error) {
	return nativeByteOrder()
}

// detectByteOrder inspects the memory of a known 16 bit pattern. The load
// is bounded to the two bytes backing the probe value.
func detectByteOrder() (binary.ByteOrder, error) {
	probe := uint16(0x1234)
	switch b := *(*[2]byte)(unsafe.Pointer(&probe)); b[0] {
	case 0x34:
		return binary.LittleEndian, nil
	case 0x12:
		return binary.BigEndian, nil
	default:
		return nil, ErrUnknownArchitecture
	}
}
