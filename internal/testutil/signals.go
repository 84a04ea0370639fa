package testutil

import (
	"math"
	"math/rand"
)

// QuantizedSine generates a deterministic sine wave rounded to int32.
func QuantizedSine(freqHz, sampleRate float64, amplitude int32, length int) []int32 {
	out := make([]int32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = int32(math.Round(float64(amplitude) * math.Sin(step*float64(i))))
	}
	return out
}

// DeterministicNoise generates uniform integer noise in [-amplitude, amplitude]
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude int32, length int) []int32 {
	out := make([]int32, length)
	if amplitude <= 0 {
		return out
	}
	rng := rand.New(rand.NewSource(seed))
	span := 2*int64(amplitude) + 1
	for i := range out {
		out[i] = int32(rng.Int63n(span) - int64(amplitude))
	}
	return out
}

// PDM generates a deterministic 1-bit stream of +1/-1 values whose density
// encodes level in [-1, 1], using a first-order sigma-delta loop.
func PDM(level float64, length int) []int32 {
	out := make([]int32, length)
	var acc float64
	for i := range out {
		acc += level
		if acc >= 0 {
			out[i] = 1
			acc--
		} else {
			out[i] = -1
			acc++
		}
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []int32 {
	out := make([]int32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value int32, length int) []int32 {
	out := make([]int32, length)
	for i := range out {
		out[i] = value
	}
	return out
}
