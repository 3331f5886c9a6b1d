package backtest

import (
	"math"

	"github.com/zenithalgo/zenith-go/pkg/indicator"
)

// ATRStopSeries computes the ATR series consumed by ATR stop mode. Warm-up
// NaNs are replaced with 0 so an entry taken before the ATR is defined
// carries a zero stop distance instead of poisoning the stop price.
func ATRStopSeries(high, low, close []float64, period int) ([]float64, error) {
	raw, err := indicator.ATR(high, low, close, period)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(raw))
	for i, v := range raw {
		if math.IsNaN(v) {
			out[i] = 0
			continue
		}
		out[i] = v
	}
	return out, nil
}
