package backtest

import (
	"math"
	"sort"

	"github.com/zenithalgo/zenith-go/internal/models"
)

// EquityMetrics summarizes an equity curve.
type EquityMetrics struct {
	TotalReturn float64 `json:"total_return"`
	MaxDrawdown float64 `json:"max_drawdown"`
	Sharpe      float64 `json:"sharpe"`
}

// TradeMetrics summarizes the trade ledger. Zero-pnl trades count toward
// neither wins nor losses.
type TradeMetrics struct {
	WinRate     float64 `json:"win_rate"`
	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"`
	TotalTrades int     `json:"total_trades"`
}

// Metrics merges equity and trade metrics for one run.
type Metrics struct {
	EquityMetrics
	TradeMetrics
}

// ComputeMetrics combines equity and trade metrics. Empty inputs degrade to
// zeros rather than erroring.
func ComputeMetrics(curve []models.EquityPoint, trades []models.Trade) Metrics {
	return Metrics{
		EquityMetrics: ComputeEquityMetrics(curve),
		TradeMetrics:  ComputeTradeMetrics(trades),
	}
}

// ComputeEquityMetrics computes total return, max drawdown and a simple
// annualized Sharpe over an equity curve. The curve is expected in
// chronological order, which the simulator guarantees.
func ComputeEquityMetrics(curve []models.EquityPoint) EquityMetrics {
	if len(curve) == 0 {
		return EquityMetrics{}
	}

	initial := curve[0].Equity
	final := curve[len(curve)-1].Equity
	totalReturn := 0.0
	if initial != 0 {
		totalReturn = final/initial - 1
	}

	peak := curve[0].Equity
	maxDD := 0.0
	for _, p := range curve {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak != 0 {
			if dd := (p.Equity - peak) / peak; dd < maxDD {
				maxDD = dd
			}
		}
	}

	// Per-point returns; Sharpe annualized by the observed bar spacing.
	returns := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		prev := curve[i-1].Equity
		if prev > 0 {
			returns = append(returns, curve[i].Equity/prev-1)
		}
	}
	sharpe := 0.0
	if len(returns) > 0 {
		mu := mean(returns)
		sigma := 0.0
		if len(returns) > 1 {
			sigma = popStdDev(returns, mu)
		}
		if sigma != 0 {
			sharpe = mu / sigma * annualizationFactor(curve)
		}
	}

	return EquityMetrics{
		TotalReturn: totalReturn,
		MaxDrawdown: math.Abs(maxDD),
		Sharpe:      sharpe,
	}
}

// ComputeTradeMetrics computes win rate and average win/loss from realized
// trades.
func ComputeTradeMetrics(trades []models.Trade) TradeMetrics {
	var wins, losses []float64
	for _, t := range trades {
		switch {
		case t.PnL > 0:
			wins = append(wins, t.PnL)
		case t.PnL < 0:
			losses = append(losses, t.PnL)
		}
	}

	total := len(wins) + len(losses)
	m := TradeMetrics{TotalTrades: total}
	if total > 0 {
		m.WinRate = float64(len(wins)) / float64(total)
	}
	if len(wins) > 0 {
		m.AvgWin = mean(wins)
	}
	if len(losses) > 0 {
		m.AvgLoss = -mean(losses)
	}
	return m
}

// annualizationFactor estimates the Sharpe annualization from the median
// spacing of the equity curve, assuming 365 trading days (crypto-style
// always-on markets).
func annualizationFactor(curve []models.EquityPoint) float64 {
	if len(curve) < 2 {
		return math.Sqrt(365)
	}
	deltas := make([]float64, 0, len(curve)-1)
	for i := 1; i < len(curve); i++ {
		if dt := curve[i].Timestamp - curve[i-1].Timestamp; dt > 0 {
			deltas = append(deltas, float64(dt))
		}
	}
	if len(deltas) == 0 {
		return math.Sqrt(365)
	}
	med := median(deltas)
	if med <= 0 {
		return math.Sqrt(365)
	}
	periodsPerDay := 86400 / med
	return math.Sqrt(365 * periodsPerDay)
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func popStdDev(values []float64, mu float64) float64 {
	ss := 0.0
	for _, v := range values {
		d := v - mu
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
