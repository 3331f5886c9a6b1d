package strategy

import (
	"fmt"
	"math"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/indicator"
)

// VolatilityBreakout emits entry signals when the close crosses a Bollinger
// band: buy on a cross above SMA + k*stddev, sell on a cross below
// SMA - k*stddev. Only the crossing bar signals, so a close that stays
// outside the band does not re-fire. Exits are left to the simulator's
// stop/target logic. If one bar somehow crosses both bands the long entry
// wins.
func VolatilityBreakout(closes []float64, window int, k float64) ([]int, error) {
	if window == 0 {
		return nil, fmt.Errorf("%w: volatility breakout window must be greater than 0", models.ErrInvalidArgument)
	}

	ma, err := indicator.SMA(closes, window)
	if err != nil {
		return nil, err
	}
	std, err := indicator.StdDev(closes, window)
	if err != nil {
		return nil, err
	}

	n := len(closes)
	upper := make([]float64, n)
	lower := make([]float64, n)
	for i := 0; i < n; i++ {
		upper[i] = ma[i] + k*std[i]
		lower[i] = ma[i] - k*std[i]
	}

	signals := make([]int, n)
	for i := 1; i < n; i++ {
		if math.IsNaN(upper[i]) || math.IsNaN(upper[i-1]) {
			continue
		}
		switch {
		case closes[i] > upper[i] && closes[i-1] <= upper[i-1]:
			signals[i] = models.SignalBuy
		case closes[i] < lower[i] && closes[i-1] >= lower[i-1]:
			signals[i] = models.SignalSell
		}
	}
	return signals, nil
}
