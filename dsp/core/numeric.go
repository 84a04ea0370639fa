package core

import (
	"math"
	"math/bits"
)

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}

// FloorLog2 returns floor(log2(x)) for x > 0 and 0 for x == 0.
func FloorLog2(x uint64) uint {
	if x == 0 {
		return 0
	}

	return uint(bits.Len64(x) - 1)
}

// CheckedPow returns base^exp for non-negative operands. ok is false when
// the result does not fit in an int64 or an operand is negative.
func CheckedPow(base, exp int) (result int64, ok bool) {
	if base < 0 || exp < 0 {
		return 0, false
	}

	result = 1
	for range exp {
		hi, lo := bits.Mul64(uint64(result), uint64(base))
		if hi != 0 || lo > math.MaxInt64 {
			return 0, false
		}
		result = int64(lo)
	}

	return result, true
}
