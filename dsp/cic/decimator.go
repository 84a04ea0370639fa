package cic

import "fmt"

// Decimator passes through every M-th input sample.
type Decimator struct {
	factor  int
	counter int
}

// NewDecimator creates a decimator releasing one sample per factor inputs.
func NewDecimator(factor int) (*Decimator, error) {
	if factor <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDecimation, factor)
	}

	return &Decimator{factor: factor}, nil
}

// Decimate counts x and returns (x, true) on every M-th call since the last
// release. All other calls return (0, false). The first release happens on
// call M, not on call 1.
func (d *Decimator) Decimate(x int32) (int32, bool) {
	d.counter++
	if d.counter == d.factor {
		d.counter = 0
		return x, true
	}

	return 0, false
}

// Pending returns how many more calls are needed until the next release.
func (d *Decimator) Pending() int {
	return d.factor - d.counter
}

// Factor returns the decimation factor M.
func (d *Decimator) Factor() int {
	return d.factor
}

// Reset restarts the counting window.
func (d *Decimator) Reset() {
	d.counter = 0
}
