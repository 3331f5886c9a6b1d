package indicator

import (
	"fmt"

	"github.com/zenithalgo/zenith-go/internal/models"
)

// SMA calculates the Simple Moving Average
// SMA = Sum of prices over window / window
//
// The divisor is the fixed window, not a count of usable values: a NaN input
// contaminates every sum it participates in until it slides out of the
// window. Use series.RollingMean for the NaN-skipping variant.
func SMA(values []float64, window int) ([]float64, error) {
	if window == 0 {
		return nil, fmt.Errorf("%w: sma window must be greater than 0", models.ErrInvalidArgument)
	}

	n := len(values)
	out := nanSeries(n)

	sum := 0.0
	for i := 0; i < n; i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		if i+1 >= window {
			out[i] = sum / float64(window)
		}
	}
	return out, nil
}
