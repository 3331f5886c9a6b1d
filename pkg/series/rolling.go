// Package series implements the rolling statistics primitives that back
// every indicator: NaN-aware sliding-window means, recursive exponential
// smoothing, and windowed sample deviation over float64 series.
//
// A NaN marks "missing/undefined" at a position. Each function returns a
// newly allocated slice of the same length as its input, with NaN in the
// warm-up region. Window validation belongs to the indicator layer; a zero
// window here simply yields an all-NaN output.
package series

import "math"

// RollingMean computes the trailing mean over window positions, maintaining
// a running sum and count of non-NaN values. The output at index i is
// defined only when the trailing window ending at i contains no NaN at all;
// otherwise it stays NaN.
func RollingMean(values []float64, window int) []float64 {
	n := len(values)
	out := NaNs(n)
	if window == 0 || n == 0 {
		return out
	}

	sum := 0.0
	count := 0
	for i := 0; i < n; i++ {
		if v := values[i]; !math.IsNaN(v) {
			sum += v
			count++
		}
		if i >= window {
			if evicted := values[i-window]; !math.IsNaN(evicted) {
				sum -= evicted
				count--
			}
		}
		if count >= window {
			out[i] = sum / float64(count)
		}
	}
	return out
}

// EMASeries computes the exponential moving average with alpha = 2/(period+1),
// seeded from values[0]. The recursion runs from index 0 but values are only
// emitted from index period-1 onward, so the earliest emitted values still
// carry seed bias. A NaN input poisons the recursion permanently: every value
// from the first NaN on is NaN, since the contaminated state never leaves the
// recurrence.
func EMASeries(values []float64, period int) []float64 {
	n := len(values)
	out := NaNs(n)
	if period == 0 || n == 0 {
		return out
	}

	alpha := 2.0 / (float64(period) + 1.0)
	ema := values[0]
	for i := 0; i < n; i++ {
		if i > 0 {
			ema = alpha*values[i] + (1.0-alpha)*ema
		}
		if i+1 >= period {
			out[i] = ema
		}
	}
	return out
}

// RollingStdDev computes the trailing sample standard deviation over period
// raw positions, using only the non-NaN entries of each window. A window with
// a single usable value yields 0; an empty one stays NaN. Two passes per
// index, O(n*period) overall, which is fine for the small windows indicators
// use.
func RollingStdDev(values []float64, period int) []float64 {
	n := len(values)
	out := NaNs(n)
	if period == 0 || n == 0 {
		return out
	}

	for i := period - 1; i < n; i++ {
		sum := 0.0
		count := 0
		for j := i - period + 1; j <= i; j++ {
			if v := values[j]; !math.IsNaN(v) {
				sum += v
				count++
			}
		}
		if count == 0 {
			continue
		}
		if count == 1 {
			out[i] = 0
			continue
		}

		mean := sum / float64(count)
		sumSqDiff := 0.0
		for j := i - period + 1; j <= i; j++ {
			if v := values[j]; !math.IsNaN(v) {
				d := v - mean
				sumSqDiff += d * d
			}
		}
		out[i] = math.Sqrt(sumSqDiff / float64(count-1))
	}
	return out
}

// NaNs returns a slice of n NaN values.
func NaNs(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
