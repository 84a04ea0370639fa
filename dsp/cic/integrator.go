package cic

// Integrator is a single-pole running accumulator.
// The zero value is ready to use.
type Integrator struct {
	lastOutput int32
}

// Integrate adds x to the accumulator and returns the new sum.
// The sum wraps modulo 2^32.
func (g *Integrator) Integrate(x int32) int32 {
	y := g.lastOutput + x
	g.lastOutput = y
	return y
}

// Reset clears the accumulator.
func (g *Integrator) Reset() {
	g.lastOutput = 0
}
