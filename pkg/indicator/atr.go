package indicator

import (
	"fmt"
	"math"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/series"
)

// ATR calculates the Average True Range over high/low/close series.
//
// True range at bar 0 is high-low; at bar i>0 it is the maximum of
// high-low, |high-prevClose| and |low-prevClose|, skipping NaN candidates.
// The output is the NaN-aware rolling mean of the true ranges and its
// length is the minimum of the three input lengths.
func ATR(high, low, close []float64, period int) ([]float64, error) {
	if period == 0 {
		return nil, fmt.Errorf("%w: atr period must be greater than 0", models.ErrInvalidArgument)
	}

	n := len(high)
	if len(low) < n {
		n = len(low)
	}
	if len(close) < n {
		n = len(close)
	}

	tr := nanSeries(n)
	for i := 0; i < n; i++ {
		hl := high[i] - low[i]
		if i == 0 {
			tr[i] = hl
			continue
		}
		prevClose := close[i-1]
		maxVal := hl
		if hc := math.Abs(high[i] - prevClose); !isNaN(hc) && hc > maxVal {
			maxVal = hc
		}
		if lc := math.Abs(low[i] - prevClose); !isNaN(lc) && lc > maxVal {
			maxVal = lc
		}
		tr[i] = maxVal
	}

	return series.RollingMean(tr, period), nil
}
