// Package spectrum provides helpers for complex FFT bins: magnitude, phase,
// phase unwrapping and group delay.
//
// The package does not implement an FFT. It operates on bins produced by an
// external FFT backend.
package spectrum
