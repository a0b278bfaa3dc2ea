package buffer

import "bytes"

// ZeroMem sets every byte of b to zero.
func ZeroMem(b []byte) {
	clear(b)
}

// EqualMem reports whether the first n bytes of a and b are equal. n == 0
// is always equal; n beyond either region is never equal.
func EqualMem(a, b []byte, n int) bool {
	if n == 0 {
		return true
	}
	if n < 0 || n > len(a) || n > len(b) {
		return false
	}
	return bytes.Equal(a[:n], b[:n])
}
