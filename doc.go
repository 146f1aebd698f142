// Package scalar tags fixed-size scalar values with the byte order they
// were read in, deferring endianness conversion until the value is used.
//
// Binary formats frequently interleave values whose byte order is only
// known after more of the input has been parsed, for example a file whose
// header declares the byte order of its body. Converting eagerly forces the
// parser to thread an if/else through every read. This package instead
// wraps each value in an [Endian] which records the byte order alongside
// the payload. Values can be read in host order via [FromStream], passed
// around as tagged data, and resolved with [Endian.Cast] or one of the
// directed accessors once the desired byte order is known.
//
// The wrapper is a plain immutable value type. Casting never modifies the
// receiver, and all raw memory access is confined to two small probing and
// byte-reversal primitives bounded by the size of the payload type.
package scalar
