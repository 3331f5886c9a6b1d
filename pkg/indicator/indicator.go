// Package indicator provides batch technical indicators over float64 price
// series. Every function takes a complete, already-aligned series and
// returns a newly allocated series of the same length, with NaN marking the
// warm-up region. Calls fail only on structural violations (zero
// window/period); data-dependent degeneracies come back as NaN.
//
// All functions are pure and hold no state between calls, so concurrent
// callers are safe as long as each call owns its own buffers.
package indicator

import "math"

func nanSeries(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

func isNaN(v float64) bool {
	return math.IsNaN(v)
}
