package ipfmt

import (
	"strconv"
	"unsafe"
)

// Integer matches the integer types accepted by [Int]. bool is absent:
// it is integral-like in many type systems but never a byte sequence.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int classifies an integer for dotted rendering. The value is
// reinterpreted as the unsigned type of identical width and split into
// 8-bit groups, most significant first, each rendered as its decimal
// value 0-255. Int(int32(0x7F000001)) renders as "127.0.0.1"; a
// single-byte type yields one group with no separator; negative values
// render via their two's-complement bit pattern, so Int(int8(-1))
// renders as "255".
func Int[T Integer](v T) Value {
	// uint64(v) sign-extends signed inputs; the per-group mask below
	// keeps only the octets that belong to T's width.
	return intValue{bits: uint64(v), width: int(unsafe.Sizeof(v))}
}

type intValue struct {
	bits  uint64
	width int // octets
}

func (v intValue) appendDotted(dst []byte) []byte {
	for i := 0; i < v.width; i++ {
		if i > 0 {
			dst = append(dst, '.')
		}
		shift := 8 * (v.width - 1 - i)
		dst = strconv.AppendUint(dst, (v.bits>>uint(shift))&0xFF, 10)
	}
	return dst
}
