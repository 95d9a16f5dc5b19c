// Package safe provides overflow-checked integer helpers.
package safe

import (
	"fmt"
	"math/bits"
)

// Uint64 converts a signed integer to uint64, rejecting negative values.
func Uint64[T ~int | ~int32 | ~int64](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return uint64(v), nil
}

// AddUint64 returns a+b, failing instead of wrapping around.
func AddUint64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, fmt.Errorf("%d + %d overflows uint64", a, b)
	}
	return sum, nil
}
