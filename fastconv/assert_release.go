//go:build !rtdebug

package fastconv

func checkRange(float64) {}
