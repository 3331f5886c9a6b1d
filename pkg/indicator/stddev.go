package indicator

import (
	"fmt"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/series"
)

// StdDev calculates the rolling sample standard deviation over period
// trailing positions, ignoring NaN entries within each window. A window
// with one usable value yields 0; an all-NaN window yields NaN.
func StdDev(values []float64, period int) ([]float64, error) {
	if period == 0 {
		return nil, fmt.Errorf("%w: stddev period must be greater than 0", models.ErrInvalidArgument)
	}
	return series.RollingStdDev(values, period), nil
}
