package cic

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-cic/dsp/core"
)

var (
	// ErrInvalidChannels indicates a channel count <= 0.
	ErrInvalidChannels = errors.New("cic: invalid channel count")
	// ErrFrameLength indicates an interleaved buffer that is not a whole
	// number of frames.
	ErrFrameLength = errors.New("cic: interleaved length is not a multiple of the channel count")
)

// Bank filters an interleaved multi-channel stream with one independent
// Filter per channel. All channels share M and N and advance in lockstep.
type Bank struct {
	filters []*Filter
}

// NewBank creates a bank of channels identical CIC filters.
func NewBank(channels, decimation, stages int, opts ...core.ProcessorOption) (*Bank, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	filters := make([]*Filter, channels)
	for c := range filters {
		f, err := New(decimation, stages, opts...)
		if err != nil {
			return nil, err
		}
		filters[c] = f
	}

	return &Bank{filters: filters}, nil
}

// ProcessInterleaved filters interleaved frames and returns the interleaved
// decimated frames.
func (b *Bank) ProcessInterleaved(src []int32) ([]int32, error) {
	return b.ProcessInterleavedTo(nil, src)
}

// ProcessInterleavedTo is like ProcessInterleaved but reuses dst's capacity.
// The returned slice holds exactly the produced samples.
func (b *Bank) ProcessInterleavedTo(dst, src []int32) ([]int32, error) {
	ch := len(b.filters)
	if len(src)%ch != 0 {
		return dst[:0], fmt.Errorf("%w: %d samples, %d channels", ErrFrameLength, len(src), ch)
	}

	frames := len(src) / ch
	dst = core.EnsureLen(dst, b.filters[0].PredictOutputLen(frames)*ch)

	n := 0
	for i := 0; i < len(src); i += ch {
		ready := false
		for c, f := range b.filters {
			y, ok := f.ProcessSample(src[i+c])
			if ok {
				dst[n+c] = y
				ready = true
			}
		}
		if ready {
			n += ch
		}
	}

	return dst[:n], nil
}

// Channel returns the filter for channel c. It is meant for inspection;
// feeding it directly desynchronizes it from the other channels.
func (b *Bank) Channel(c int) *Filter {
	return b.filters[c]
}

// Channels returns the channel count.
func (b *Bank) Channels() int {
	return len(b.filters)
}

// Reset clears the state of every channel.
func (b *Bank) Reset() {
	for _, f := range b.filters {
		f.Reset()
	}
}
