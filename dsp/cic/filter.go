package cic

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-cic/dsp/core"
)

var (
	// ErrInvalidDecimation indicates a decimation factor M <= 0.
	ErrInvalidDecimation = errors.New("cic: invalid decimation factor")
	// ErrInvalidStages indicates a stage count N <= 0.
	ErrInvalidStages = errors.New("cic: invalid stage count")
)

// Filter is an N-stage CIC decimator with decimation factor M.
//
// Stage count and decimation factor are fixed at construction. Processing
// never allocates.
type Filter struct {
	integrators []Integrator
	decimator   Decimator
	combs       []Differentiator

	sampleRate float64
}

// New creates a CIC decimation filter with the given decimation factor M and
// stage count N. Both must be > 0.
func New(decimation, stages int, opts ...core.ProcessorOption) (*Filter, error) {
	if decimation <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDecimation, decimation)
	}

	if stages <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStages, stages)
	}

	cfg := core.ApplyProcessorOptions(opts...)

	return &Filter{
		integrators: make([]Integrator, stages),
		decimator:   Decimator{factor: decimation},
		combs:       make([]Differentiator, stages),
		sampleRate:  cfg.SampleRate,
	}, nil
}

// MustNew is like New but panics if the parameters are invalid.
// It is intended for filters built from constants.
func MustNew(decimation, stages int, opts ...core.ProcessorOption) *Filter {
	f, err := New(decimation, stages, opts...)
	if err != nil {
		panic(err)
	}

	return f
}

// ProcessSample feeds one input-rate sample through the filter.
// It returns (y, true) once every M calls and (0, false) otherwise.
// Comb stages only run on calls that produce output.
func (f *Filter) ProcessSample(x int32) (int32, bool) {
	y := x
	for i := range f.integrators {
		y = f.integrators[i].Integrate(y)
	}

	y, ok := f.decimator.Decimate(y)
	if !ok {
		return 0, false
	}

	for i := range f.combs {
		y = f.combs[i].Differentiate(y)
	}

	return y, true
}

// PredictOutputLen returns the number of outputs the next n inputs produce.
func (f *Filter) PredictOutputLen(n int) int {
	if n <= 0 {
		return 0
	}

	return (f.decimator.counter + n) / f.decimator.factor
}

// ProcessBlock filters src and returns the decimated outputs.
// State carries over between calls, so chunked input gives the same result
// as one-shot input.
func (f *Filter) ProcessBlock(src []int32) []int32 {
	if len(src) == 0 {
		return nil
	}

	out := make([]int32, f.PredictOutputLen(len(src)))
	n := f.ProcessBlockTo(out, src)

	return out[:n]
}

// ProcessBlockTo filters src into dst and returns the number of outputs
// written. dst must hold at least PredictOutputLen(len(src)) samples.
func (f *Filter) ProcessBlockTo(dst, src []int32) int {
	n := 0
	for _, x := range src {
		if y, ok := f.ProcessSample(x); ok {
			dst[n] = y
			n++
		}
	}

	return n
}

// Reset clears all integrator, decimator and comb state.
func (f *Filter) Reset() {
	for i := range f.integrators {
		f.integrators[i].Reset()
	}

	f.decimator.Reset()

	for i := range f.combs {
		f.combs[i].Reset()
	}
}

// Decimation returns the decimation factor M.
func (f *Filter) Decimation() int {
	return f.decimator.factor
}

// Stages returns the stage count N.
func (f *Filter) Stages() int {
	return len(f.integrators)
}

// SampleRate returns the configured input sample rate in Hz.
func (f *Filter) SampleRate() float64 {
	return f.sampleRate
}

// OutputRate returns the decimated sample rate in Hz.
func (f *Filter) OutputRate() float64 {
	return f.sampleRate / float64(f.decimator.factor)
}

// BitGrowth returns floor(log2(M)) * N, the extra output bits relative to the
// input word.
func (f *Filter) BitGrowth() uint {
	return BitGrowth(f.Decimation(), f.Stages())
}

// Gain returns the DC gain M^N. ProcessSample output is scaled by this
// factor; the filter never normalizes it.
func (f *Filter) Gain() float64 {
	return math.Pow(float64(f.Decimation()), float64(f.Stages()))
}

// Normalize arithmetic-shifts y right by BitGrowth. For power-of-two M this
// removes the DC gain exactly.
func (f *Filter) Normalize(y int32) int32 {
	return y >> f.BitGrowth()
}

// GroupDelay returns the group delay in input samples, N(M-1)/2.
func (f *Filter) GroupDelay() float64 {
	return float64(f.Stages()*(f.Decimation()-1)) / 2
}

// String implements fmt.Stringer.
func (f *Filter) String() string {
	return fmt.Sprintf("cic.Filter(M=%d, N=%d, growth=%d bits)", f.Decimation(), f.Stages(), f.BitGrowth())
}

// BitGrowth returns floor(log2(decimation)) * stages. It returns 0 for
// non-positive arguments.
func BitGrowth(decimation, stages int) uint {
	if decimation <= 0 || stages <= 0 {
		return 0
	}

	return core.FloorLog2(uint64(decimation)) * uint(stages)
}
