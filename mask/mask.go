// Package mask provides operations to extract and manipulate ranges of bits
// from a byte.
//
// All byte indices must be 1-indexed, and ranges must be inclusive.

package mask

// A byteIndex provides compile-time safety when indexing into a byte.
type byteIndex byte

const (
	I1 byteIndex = iota + 1
	I2
	I3
	I4
	I5
	I6
	I7
	I8
)

// https://pkg.go.dev/golang.org/x/text/internal/gen/bitfield
// https://cs.opensource.google/go/x/text/+/refs/tags/v0.18.0:internal/gen/bitfield/bitfield_test.go;l=16

// func checkByteIndex(n byteIndex) {
// 	// https://github.com/golang/go/issues/29649#issuecomment-454585328
// 	// https://github.com/golang/go/issues/29649#issuecomment-454820179
// 	//
// 	// Go does not allow us to model a constrained int with a type, hence
// 	// this helper func
// 	if n < 1 || n > 8 {
// 		panic("Invalid byte index provided -- must fall in the range [1,8].")
// 	}
// }

func checkByteRange(start byteIndex, end byteIndex) {
	if start > end {
		panic("Invalid range provided -- start must <= end.")
	}
}

// Last extracts the last n bits of b.
func Last(b byte, n byteIndex) byte {
	// this and lastLoop are about 0.0000015 ns/op, in the worst case

	// https://stackoverflow.com/a/15255834
	return b & ((1 << n) - 1)
}

func lastLoop(b byte, n byteIndex) byte {
	var last byte
	for bit := range n {
		last += (1 << bit)
	}
	return b & last
}

// First extracts the first n bits of b.
func First(b byte, n byteIndex) byte {
	// push the bits down, then apply the mask as usual
	return Last(b>>(8-n), n)
	// var first byte
	// for bit := range n {
	// 	first += (1 << bit)
	// }
	// return (b >> (8 - n)) & (first)
}

// Range extracts the inclusive range of bits [start:end] from b. Both start
// and end are 1-indexed.
func Range(b byte, start byteIndex, end byteIndex) byte {
	checkByteRange(start, end)
	// 0b1101_1000, 4, 5
	//      L_LLLL
	//      F_F
	tail := Last(b, 8-(start-1))
	return First(tail, end)
}

// IsSet reports whether the bit at pos is 1.
func IsSet(b byte, pos byteIndex) bool {
	return b&(1<<(8-pos)) != 0
}

// Word concatenates a high byte and a low byte into a little-endian word,
// i.e. the 6502's native way of combining two bytes read in program order
// into a 16-bit address.
func Word(hi byte, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// SignExtend reinterprets b as a signed 8-bit displacement and returns it
// widened to a uint16 suitable for addition to a 16-bit address with wrap.
// Used by Relative addressing (branch targets).
func SignExtend(b byte) uint16 {
	return uint16(int16(int8(b)))
}

// Page returns the page index (high byte) of a 16-bit address.
func Page(addr uint16) byte {
	return byte(addr >> 8)
}

// PageCross describes the direction, if any, in which an address
// computation moved across a 256-byte page boundary.
type PageCross int

const (
	SamePage PageCross = iota
	CrossForward
	CrossBackward
)

// Crossed classifies the page-cross direction between a base address and
// the address obtained after adding an index register to it.
func Crossed(base, result uint16) PageCross {
	switch {
	case Page(base) == Page(result):
		return SamePage
	case result > base:
		return CrossForward
	default:
		return CrossBackward
	}
}
