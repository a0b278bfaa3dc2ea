package fastconv

import (
	"math"

	"github.com/wippyai/rtbase/errors"
	"github.com/wippyai/rtbase/target"
)

const (
	// Bias is 1.5×2^36. Adding it fixes the exponent so one mantissa unit
	// is 2^-16 and the low word holds the value in 16.16 fixed point.
	Bias = 68719476736.0 * 1.5

	// BiasLiteral is Bias spelled for C sources.
	BiasLiteral = "68719476736.0*1.5"

	// MinSafe and MaxSafe bound the inputs whose 16.16 form fits a signed
	// 32-bit word. Both bounds are inclusive.
	MinSafe = -32768.0
	MaxSafe = 32767.5

	fracHalf = 0x8000
	fracMask = 0xFFFF
)

// InRange reports whether x lies in the safe input range. NaN is never in range.
func InRange(x float64) bool {
	return x >= MinSafe && x <= MaxSafe
}

// Float64ToInt32 returns x rounded to the nearest integer, ties to even.
func Float64ToInt32(x float64) int32 {
	checkRange(x)
	return toInt32(x, native)
}

// Float32ToInt32 widens x and converts it with Float64ToInt32.
func Float32ToInt32(x float32) int32 {
	return Float64ToInt32(float64(x))
}

// Float64ToFixed16 returns x in 16.16 fixed point, rounded to the nearest
// 2^-16, ties to even.
func Float64ToFixed16(x float64) int32 {
	checkRange(x)
	return fixed16(x+Bias, native)
}

// Checked converts x, reporting an error instead of producing an undefined
// result when x is out of range.
func Checked(x float64) (int32, error) {
	if !InRange(x) {
		return 0, errors.OutOfRange(errors.PhaseConvert, x, MinSafe, MaxSafe)
	}
	return toInt32(x, native), nil
}

// Saturate clamps x into the safe range. NaN maps to zero.
func Saturate(x float64) float64 {
	switch {
	case math.IsNaN(x):
		return 0
	case x < MinSafe:
		return MinSafe
	case x > MaxSafe:
		return MaxSafe
	}
	return x
}

func toInt32(x float64, order target.ByteOrder) int32 {
	y := x + Bias
	v := fixed16(y, order)

	// y-Bias is exact (same binade), so r is what the bias addition
	// rounded away. Its sign settles a 16.16 value sitting on .5.
	r := x - (y - Bias)
	base := v >> 16
	frac := v & fracMask

	up := frac > fracHalf ||
		(frac == fracHalf && (r > 0 || (r == 0 && base&1 == 1)))
	if up {
		base++
	}
	return base
}

// fixed16 reads the mantissa word of y laid out in the given byte order.
func fixed16(y float64, order target.ByteOrder) int32 {
	w := WordsOf(y, order)
	return int32(w[MantissaWord(order)])
}
