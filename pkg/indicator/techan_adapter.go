package indicator

import (
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

// Techan-backed reference implementations. These exist for cross-validation:
// the parity tests check our batch SMA/EMA against an independent library,
// the same way the original engine was validated against a second
// implementation. They are not NaN-aware and carry no warm-up sentinel, so
// only compare indices where both sides are defined.

// techanSeries builds a techan.TimeSeries from a close-price slice using
// synthetic one-minute periods.
func techanSeries(values []float64) *techan.TimeSeries {
	series := techan.NewTimeSeries()
	start := time.Unix(0, 0).UTC()
	for i, v := range values {
		period := techan.NewTimePeriod(start.Add(time.Duration(i)*time.Minute), time.Minute)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewDecimal(v)
		candle.MaxPrice = big.NewDecimal(v)
		candle.MinPrice = big.NewDecimal(v)
		candle.ClosePrice = big.NewDecimal(v)
		series.AddCandle(candle)
	}
	return series
}

// TechanSMA computes a same-length SMA series using techan's implementation.
func TechanSMA(values []float64, window int) []float64 {
	series := techanSeries(values)
	sma := techan.NewSimpleMovingAverage(techan.NewClosePriceIndicator(series), window)
	out := make([]float64, len(values))
	for i := range values {
		out[i] = sma.Calculate(i).Float()
	}
	return out
}

// TechanEMA computes a same-length EMA series using techan's implementation.
// Techan seeds its EMA from an SMA of the first window rather than the first
// value, so the two implementations only agree once the seed has washed out.
func TechanEMA(values []float64, period int) []float64 {
	series := techanSeries(values)
	ema := techan.NewEMAIndicator(techan.NewClosePriceIndicator(series), period)
	out := make([]float64, len(values))
	for i := range values {
		out[i] = ema.Calculate(i).Float()
	}
	return out
}
