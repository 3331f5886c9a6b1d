// Package backtest simulates path-dependent trade execution over aligned
// OHLC series with stop-loss/take-profit logic, producing an equity curve
// and a trade ledger. Each call is a pure, synchronous computation over a
// complete batch: no state survives between calls and nothing is shared, so
// concurrent callers are safe with their own buffers.
package backtest

import (
	"fmt"

	"github.com/zenithalgo/zenith-go/internal/models"
)

// DefaultStartingBalance is the equity base used when Config.StartingBalance
// is left zero.
const DefaultStartingBalance = 10000.0

// Input carries the aligned per-bar series for one simulation run. All
// slices must share the same length; ATR is required (and length-matched)
// only in ATR stop mode.
type Input struct {
	Timestamps []int64
	Open       []float64
	High       []float64
	Low        []float64
	Close      []float64
	Signals    []int
	ATR        []float64
}

// Config holds the risk parameters of a run.
//
// In fixed mode StopLoss and TakeProfit are fractions of the entry price
// (0.05 = 5%). In ATR mode they are multiples of the ATR sampled at entry.
// TakeProfit <= 0 disables the target; the stop is always armed.
type Config struct {
	StopLoss        float64
	TakeProfit      float64
	AllowShort      bool
	UseATR          bool
	StartingBalance float64
}

// Result is the output of one simulation run. Equity holds one point per
// input bar; Trades holds realized exits in chronological exit order. An
// open position at the last bar is not force-closed: its unrealized P&L
// shows up only in the final equity point.
type Result struct {
	Equity []models.EquityPoint `json:"equity_curve"`
	Trades []models.Trade       `json:"trades"`
}

// position is the transient per-run state: direction, entry fields, and the
// ATR value frozen at the moment of entry (ATR mode only, never recomputed).
type position struct {
	dir        int
	entryPrice float64
	entryTs    int64
	entryATR   float64
}

func (p *position) open(dir int, price float64, ts int64, atr float64) {
	p.dir = dir
	p.entryPrice = price
	p.entryTs = ts
	p.entryATR = atr
}

func (p *position) clear() {
	*p = position{}
}

// Simulate runs the per-bar state machine over the input series.
//
// Per bar, in strict order: (1) stop/target exit check, SL evaluated before
// TP so a bar that touches both fills at the stop; (2) signal application,
// where an opposing signal flips the position at the close and a buy/sell
// signal opens a new position from flat; (3) an unconditional equity mark of
// cash plus unrealized P&L. Cash changes only on realized exits.
func Simulate(in Input, cfg Config) (*Result, error) {
	n := len(in.Timestamps)
	if len(in.Open) != n || len(in.High) != n || len(in.Low) != n || len(in.Close) != n {
		return nil, fmt.Errorf("%w: OHLC series must match timestamp length %d", models.ErrInvalidArgument, n)
	}
	if len(in.Signals) != n {
		return nil, fmt.Errorf("%w: signal series length %d does not match bar count %d", models.ErrInvalidArgument, len(in.Signals), n)
	}
	if cfg.UseATR && len(in.ATR) != n {
		return nil, fmt.Errorf("%w: ATR stop mode requires an ATR series of length %d, got %d", models.ErrInvalidArgument, n, len(in.ATR))
	}

	cash := cfg.StartingBalance
	if cash == 0 {
		cash = DefaultStartingBalance
	}

	var pos position
	equity := make([]models.EquityPoint, 0, n)
	trades := make([]models.Trade, 0)

	for i := 0; i < n; i++ {
		ts := in.Timestamps[i]
		open, high, low, close := in.Open[i], in.High[i], in.Low[i], in.Close[i]

		// 1. Stop/target exit check
		if pos.dir != models.DirFlat {
			slPrice, tpPrice := stopPrices(&pos, cfg)
			if exitPrice, reason, ok := checkExit(&pos, cfg, open, high, low, slPrice, tpPrice); ok {
				pnl := (exitPrice - pos.entryPrice) * float64(pos.dir)
				cash += pnl
				trades = append(trades, newTrade(&pos, ts, exitPrice, pnl, reason))
				pos.clear()
			}
		}

		// 2. Signal application: flip first, then entry from flat. At most
		// one exit and one entry per bar.
		sig := in.Signals[i]
		if pos.dir != models.DirFlat && sig == -pos.dir {
			pnl := (close - pos.entryPrice) * float64(pos.dir)
			cash += pnl
			trades = append(trades, newTrade(&pos, ts, close, pnl, models.ExitReasonSignalFlip))
			pos.clear()
		}
		if pos.dir == models.DirFlat {
			switch {
			case sig == models.SignalBuy:
				pos.open(models.DirLong, close, ts, entryATR(in, cfg, i))
			case sig == models.SignalSell && cfg.AllowShort:
				pos.open(models.DirShort, close, ts, entryATR(in, cfg, i))
			}
			// A sell signal with shorting disabled is a no-op.
		}

		// 3. Equity mark, every bar
		unrealized := 0.0
		if pos.dir != models.DirFlat {
			unrealized = (close - pos.entryPrice) * float64(pos.dir)
		}
		equity = append(equity, models.EquityPoint{Timestamp: ts, Equity: cash + unrealized})
	}

	return &Result{Equity: equity, Trades: trades}, nil
}

// SimulateFixed runs the fixed-percentage variant: stops are fractions of
// the entry price and no ATR series is consumed.
func SimulateFixed(ts []int64, open, high, low, close []float64, signals []int, slPct, tpPct float64, allowShort bool) (*Result, error) {
	return Simulate(Input{
		Timestamps: ts,
		Open:       open,
		High:       high,
		Low:        low,
		Close:      close,
		Signals:    signals,
	}, Config{
		StopLoss:   slPct,
		TakeProfit: tpPct,
		AllowShort: allowShort,
	})
}

// stopPrices derives the stop and target levels for the open position.
// Fixed mode scales the entry price; ATR mode offsets it by multiples of
// the entry-time ATR.
func stopPrices(pos *position, cfg Config) (slPrice, tpPrice float64) {
	if cfg.UseATR {
		slDist := pos.entryATR * cfg.StopLoss
		tpDist := pos.entryATR * cfg.TakeProfit
		if pos.dir == models.DirLong {
			return pos.entryPrice - slDist, pos.entryPrice + tpDist
		}
		return pos.entryPrice + slDist, pos.entryPrice - tpDist
	}
	if pos.dir == models.DirLong {
		return pos.entryPrice * (1 - cfg.StopLoss), pos.entryPrice * (1 + cfg.TakeProfit)
	}
	return pos.entryPrice * (1 + cfg.StopLoss), pos.entryPrice * (1 - cfg.TakeProfit)
}

// checkExit applies the SL-before-TP tie-break and the gap-aware fill rule:
// when the bar opens beyond the threshold, the fill happens at the open
// (worse than the stop, better than the target); otherwise exactly at the
// threshold price.
func checkExit(pos *position, cfg Config, open, high, low, slPrice, tpPrice float64) (float64, string, bool) {
	if pos.dir == models.DirLong {
		if low <= slPrice {
			fill := slPrice
			if open < slPrice {
				fill = open
			}
			return fill, models.ExitReasonStopLoss, true
		}
		if cfg.TakeProfit > 0 && high >= tpPrice {
			fill := tpPrice
			if open > tpPrice {
				fill = open
			}
			return fill, models.ExitReasonTakeProfit, true
		}
		return 0, "", false
	}

	// Short: mirror with high/low swapped
	if high >= slPrice {
		fill := slPrice
		if open > slPrice {
			fill = open
		}
		return fill, models.ExitReasonStopLoss, true
	}
	if cfg.TakeProfit > 0 && low <= tpPrice {
		fill := tpPrice
		if open < tpPrice {
			fill = open
		}
		return fill, models.ExitReasonTakeProfit, true
	}
	return 0, "", false
}

func entryATR(in Input, cfg Config, i int) float64 {
	if cfg.UseATR {
		return in.ATR[i]
	}
	return 0
}

func newTrade(pos *position, exitTs int64, exitPrice, pnl float64, reason string) models.Trade {
	side := models.SideLong
	if pos.dir == models.DirShort {
		side = models.SideShort
	}
	return models.Trade{
		Side:       side,
		EntryTs:    pos.entryTs,
		ExitTs:     exitTs,
		EntryPrice: pos.entryPrice,
		ExitPrice:  exitPrice,
		PnL:        pnl,
		Reason:     reason,
	}
}
