package cic

// Differentiator is a single-pole comb: the difference between the current
// and the previous input. The zero value is ready to use.
type Differentiator struct {
	lastInput int32
}

// Differentiate returns x minus the previous input (0 on the first call).
// The difference wraps modulo 2^32.
func (d *Differentiator) Differentiate(x int32) int32 {
	y := x - d.lastInput
	d.lastInput = x
	return y
}

// Reset clears the stored input.
func (d *Differentiator) Reset() {
	d.lastInput = 0
}
