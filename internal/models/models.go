package models

// Signal values, one per bar, index-aligned to the price series.
const (
	SignalBuy  = 1
	SignalSell = -1
	SignalNone = 0
)

// Position directions inside a simulation run.
const (
	DirFlat  = 0
	DirLong  = 1
	DirShort = -1
)

// Exit reasons recorded on realized trades.
const (
	ExitReasonStopLoss   = "sl"
	ExitReasonTakeProfit = "tp"
	ExitReasonSignalFlip = "signal_flip"
)

// Trade sides.
const (
	SideLong  = "long"
	SideShort = "short"
)

// Bar represents one OHLC sample. Timestamps are unix seconds and are
// caller-assured monotonic.
type Bar struct {
	Timestamp int64   `json:"timestamp"`
	Open      float64 `json:"open"`
	High      float64 `json:"high"`
	Low       float64 `json:"low"`
	Close     float64 `json:"close"`
}

// Validate validates a Bar
func (b *Bar) Validate() error {
	if b.High < b.Low {
		return ErrInvalidBar
	}
	return nil
}

// Trade is an immutable record of a realized exit, appended to the ledger
// in chronological exit order.
type Trade struct {
	Side       string  `json:"side"`
	EntryTs    int64   `json:"entry_ts"`
	ExitTs     int64   `json:"exit_ts"`
	EntryPrice float64 `json:"entry_price"`
	ExitPrice  float64 `json:"exit_price"`
	PnL        float64 `json:"pnl"`
	Reason     string  `json:"reason"`
}

// EquityPoint marks the account equity at one bar. One point is emitted per
// input bar, whether or not a transition occurred.
type EquityPoint struct {
	Timestamp int64   `json:"timestamp"`
	Equity    float64 `json:"equity"`
}
