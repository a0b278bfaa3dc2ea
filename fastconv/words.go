package fastconv

import (
	"math"

	"github.com/wippyai/rtbase/target"
)

// WordsOf splits the 64-bit pattern of x into the two 32-bit words found at
// increasing addresses when x is stored in the given byte order.
func WordsOf(x float64, order target.ByteOrder) [2]uint32 {
	var b [8]byte
	bo := order.Binary()
	bo.PutUint64(b[:], math.Float64bits(x))
	return [2]uint32{bo.Uint32(b[0:4]), bo.Uint32(b[4:8])}
}

// MantissaWord returns the index of the word holding the low mantissa bits:
// the first word on little-endian targets, the second on big-endian ones.
func MantissaWord(order target.ByteOrder) int {
	if order == target.BigEndian {
		return 1
	}
	return 0
}
