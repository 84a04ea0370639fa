package cic

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-cic/dsp/core"
	"github.com/cwbudde/algo-cic/dsp/spectrum"
)

var (
	// ErrKernelOverflow indicates that M^N does not fit in an int64.
	ErrKernelOverflow = errors.New("cic: kernel coefficients overflow int64")
	// ErrInvalidFFTSize indicates an FFT size that is not a power of two or
	// is shorter than the kernel.
	ErrInvalidFFTSize = errors.New("cic: invalid FFT size")
)

// Response is the frequency response of a CIC filter evaluated at the
// non-negative FFT bins 0..FFTSize/2.
type Response struct {
	FFTSize int

	// FreqHz holds the bin frequencies relative to the input sample rate.
	FreqHz []float64
	// Magnitude is |H| normalized to 1 at DC.
	Magnitude []float64
	// MagnitudeDB is Magnitude in dB.
	MagnitudeDB []float64
	// GroupDelay is in input samples. It is only meaningful away from the
	// response nulls at multiples of SampleRate/M.
	GroupDelay []float64
}

// Kernel returns the impulse response of the FIR filter equivalent to an
// N-stage CIC with decimation M before rate reduction: N boxcars of length M
// convolved together. It has N(M-1)+1 taps that sum to M^N.
//
// Sampling the convolution of any input with Kernel at input indices kM-1
// (k = 1, 2, ...) reproduces the filter output modulo 2^32.
func Kernel(decimation, stages int) ([]int64, error) {
	if decimation <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDecimation, decimation)
	}

	if stages <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStages, stages)
	}

	if _, ok := core.CheckedPow(decimation, stages); !ok {
		return nil, fmt.Errorf("%w: M=%d N=%d", ErrKernelOverflow, decimation, stages)
	}

	return boxcarCascade[int64](decimation, stages, 1), nil
}

// MagnitudeAt returns the DC-normalized magnitude response
//
//	|H(f)| = |sin(pi M f) / (M sin(pi f))|^N
//
// at freq in cycles per input sample.
func MagnitudeAt(decimation, stages int, freq float64) float64 {
	if decimation <= 0 || stages <= 0 {
		return 0
	}

	den := float64(decimation) * math.Sin(math.Pi*freq)
	if math.Abs(den) < 1e-12 {
		return 1
	}

	r := math.Sin(math.Pi*float64(decimation)*freq) / den

	return math.Pow(math.Abs(r), float64(stages))
}

// MagnitudeDB returns the DC-normalized magnitude response in dB at freqHz,
// relative to the configured input sample rate.
func (f *Filter) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(MagnitudeAt(f.Decimation(), f.Stages(), freqHz/f.sampleRate))
}

// Response evaluates the frequency response with an fftSize-point FFT of the
// equivalent kernel. fftSize must be a power of two, at least 2 and at least
// N(M-1)+1.
func (f *Filter) Response(fftSize int) (*Response, error) {
	taps := f.Stages()*(f.Decimation()-1) + 1
	if fftSize < 2 || fftSize&(fftSize-1) != 0 || fftSize < taps {
		return nil, fmt.Errorf("%w: %d (kernel has %d taps)", ErrInvalidFFTSize, fftSize, taps)
	}

	kernel := boxcarCascade(f.Decimation(), f.Stages(), 1/float64(f.Decimation()))

	in := make([]complex128, fftSize)
	for i, h := range kernel {
		in[i] = complex(h, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("cic: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("cic: forward FFT: %w", err)
	}

	bins := out[:fftSize/2+1]

	groupDelay, err := spectrum.GroupDelayFromPhase(spectrum.UnwrapPhase(spectrum.Phase(bins)), fftSize)
	if err != nil {
		return nil, fmt.Errorf("cic: group delay: %w", err)
	}

	resp := &Response{
		FFTSize:     fftSize,
		FreqHz:      make([]float64, len(bins)),
		Magnitude:   spectrum.Magnitude(bins),
		MagnitudeDB: make([]float64, len(bins)),
		GroupDelay:  groupDelay,
	}

	for k := range bins {
		resp.FreqHz[k] = float64(k) * f.sampleRate / float64(fftSize)
		resp.MagnitudeDB[k] = core.LinearToDB(resp.Magnitude[k])
	}

	return resp, nil
}

// boxcarCascade convolves stages boxcars of length m and tap weight w.
func boxcarCascade[T int64 | float64](m, stages int, w T) []T {
	h := []T{1}
	for range stages {
		h = convolveBoxcar(h, m, w)
	}

	return h
}

// convolveBoxcar returns h convolved with m taps of weight w, using a running
// sum.
func convolveBoxcar[T int64 | float64](h []T, m int, w T) []T {
	out := make([]T, len(h)+m-1)

	var acc T
	for k := range out {
		if k < len(h) {
			acc += h[k]
		}
		if j := k - m; j >= 0 && j < len(h) {
			acc -= h[j]
		}
		out[k] = w * acc
	}

	return out
}
