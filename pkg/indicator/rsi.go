package indicator

import (
	"fmt"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/series"
)

// RSI calculates the Relative Strength Index
// RSI = 100 - (100 / (1 + RS))
// where RS = Average Gain / Average Loss over the period
//
// Gains and losses come from per-bar close deltas (index 0 has no delta and
// stays NaN; a NaN delta yields NaN gain and loss). The averages use the
// NaN-aware rolling mean, so the output is defined only once a full
// NaN-free window of deltas exists. A zero average loss means the run was
// all gains and pins the RSI at 100.
func RSI(values []float64, period int) ([]float64, error) {
	if period == 0 {
		return nil, fmt.Errorf("%w: rsi period must be greater than 0", models.ErrInvalidArgument)
	}

	n := len(values)
	gains := nanSeries(n)
	losses := nanSeries(n)
	for i := 1; i < n; i++ {
		delta := values[i] - values[i-1]
		switch {
		case isNaN(delta):
			// gain and loss stay NaN
		case delta >= 0:
			gains[i] = delta
			losses[i] = 0
		default:
			gains[i] = 0
			losses[i] = -delta
		}
	}

	avgGain := series.RollingMean(gains, period)
	avgLoss := series.RollingMean(losses, period)

	out := nanSeries(n)
	for i := 0; i < n; i++ {
		g, l := avgGain[i], avgLoss[i]
		switch {
		case isNaN(g) || isNaN(l):
			// warm-up or NaN-contaminated window
		case l == 0:
			out[i] = 100
		default:
			rs := g / l
			out[i] = 100 - (100 / (1 + rs))
		}
	}
	return out, nil
}
