//go:build rtdebug

package fastconv

import "github.com/wippyai/rtbase/errors"

func checkRange(x float64) {
	if !InRange(x) {
		panic(errors.OutOfRange(errors.PhaseConvert, x, MinSafe, MaxSafe))
	}
}
