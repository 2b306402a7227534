// Package safe provides checked integer conversions for block heights and indexes.
package safe

import (
	"fmt"
	"math"
)

type integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, rejecting negatives and values above math.MaxUint32.
func Uint32[T integer](v T) (uint32, error) {
	if !inRange(v, 0, math.MaxUint32) {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}

// Int64 converts v to int64, rejecting unsigned values above math.MaxInt64.
func Int64[T integer](v T) (int64, error) {
	if !inRange(v, math.MinInt64, math.MaxInt64) {
		return 0, fmt.Errorf("value %d out of int64 range", v)
	}
	return int64(v), nil
}

// inRange compares v against [lo, hi] without narrowing it first.
func inRange[T integer](v T, lo int64, hi uint64) bool {
	if v < 0 {
		return int64(v) >= lo
	}
	return uint64(v) <= hi
}
