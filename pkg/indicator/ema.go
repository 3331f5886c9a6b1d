package indicator

import (
	"fmt"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/series"
)

// EMA calculates the Exponential Moving Average
// EMA_i = alpha * price_i + (1 - alpha) * EMA_{i-1}, alpha = 2 / (period + 1)
//
// The recursion is seeded from the first value and runs from index 0; output
// is emitted from index period-1 onward, so early values carry seed bias.
// A NaN input poisons every subsequent value permanently.
func EMA(values []float64, period int) ([]float64, error) {
	if period == 0 {
		return nil, fmt.Errorf("%w: ema period must be greater than 0", models.ErrInvalidArgument)
	}
	return series.EMASeries(values, period), nil
}
