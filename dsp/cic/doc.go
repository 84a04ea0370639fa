// Package cic provides a fixed-point Cascaded Integrator-Comb (CIC) decimation
// filter for converting oversampled 1-bit (PDM) or multi-bit streams into a
// lower-rate PCM stream.
//
// A [Filter] with decimation factor M and stage count N wires N [Integrator]
// stages, one [Decimator] and N [Differentiator] (comb) stages in series:
//
//	x -> I_0 -> ... -> I_{N-1} -> (decimate by M) -> C_0 -> ... -> C_{N-1} -> y
//
// All arithmetic is int32 with two's-complement wraparound. Overflow inside
// the integrators is cancelled by the combs, so the output is exact as long as
// input_bits + [Filter.BitGrowth] fits in 32 bits.
//
// The output is not normalized: the DC gain is M^N (see [Filter.Gain]).
// Callers that need unity gain can shift by BitGrowth, which [Filter.Normalize]
// does for power-of-two M.
//
// Common workflows:
//   - New(decimation, stages, opts...) / MustNew for compile-time constants
//   - ProcessSample for one sample at the input rate
//   - ProcessBlock / ProcessBlockTo for streaming blocks
//   - NewBank for interleaved multi-channel streams
//   - Kernel, MagnitudeAt and Filter.Response for frequency-domain analysis
//
// A Filter is not safe for concurrent use. Use one instance per channel.
package cic
