// Package strategy turns indicator series into dense, bar-aligned signal
// slices for the trade simulator. Generators are pure: one call, one signal
// slice, no retained state.
package strategy

import (
	"fmt"
	"math"

	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/pkg/indicator"
)

// MACrossover emits a buy signal on the golden cross (short SMA moving
// above the long SMA) and a sell signal on the death cross. Positions are
// derived from the boolean short>long state; a NaN on either side counts as
// "not above", so the warm-up region holds no position.
func MACrossover(closes []float64, shortWindow, longWindow int) ([]int, error) {
	if shortWindow == 0 || longWindow == 0 {
		return nil, fmt.Errorf("%w: ma crossover windows must be greater than 0", models.ErrInvalidArgument)
	}

	shortMA, err := indicator.SMA(closes, shortWindow)
	if err != nil {
		return nil, err
	}
	longMA, err := indicator.SMA(closes, longWindow)
	if err != nil {
		return nil, err
	}

	signals := make([]int, len(closes))
	prev := 0
	for i := range closes {
		pos := 0
		if !math.IsNaN(shortMA[i]) && !math.IsNaN(longMA[i]) && shortMA[i] > longMA[i] {
			pos = 1
		}
		switch pos - prev {
		case 1:
			signals[i] = models.SignalBuy
		case -1:
			signals[i] = models.SignalSell
		}
		prev = pos
	}
	return signals, nil
}
