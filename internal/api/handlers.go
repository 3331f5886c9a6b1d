package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/zenithalgo/zenith-go/internal/backtest"
	"github.com/zenithalgo/zenith-go/internal/data"
	"github.com/zenithalgo/zenith-go/internal/models"
	"github.com/zenithalgo/zenith-go/internal/strategy"
	"github.com/zenithalgo/zenith-go/internal/telemetry"
	"github.com/zenithalgo/zenith-go/pkg/indicator"
	"github.com/zenithalgo/zenith-go/pkg/logger"
)

// BacktestHandler serves simulation runs
type BacktestHandler struct{}

// NewBacktestHandler creates a new backtest handler
func NewBacktestHandler() *BacktestHandler {
	return &BacktestHandler{}
}

// StrategyParams selects and parameterizes a signal generator
type StrategyParams struct {
	Name        string  `json:"name"`
	ShortWindow int     `json:"short_window"`
	LongWindow  int     `json:"long_window"`
	Window      int     `json:"window"`
	BandK       float64 `json:"band_k"`
}

// RiskParams carries the simulator stop configuration.
// ATRStopMultiplier > 0 switches stops from fixed percentages to ATR
// multiples frozen at entry.
type RiskParams struct {
	StopLoss          float64 `json:"stop_loss"`
	TakeProfit        float64 `json:"take_profit"`
	AllowShort        bool    `json:"allow_short"`
	ATRStopMultiplier float64 `json:"atr_stop_multiplier"`
	ATRTakeMultiplier float64 `json:"atr_take_multiplier"`
	ATRPeriod         int     `json:"atr_period"`
}

// BacktestRequest is the POST /api/v1/backtest body. Signals and Strategy
// are mutually exclusive ways of driving the simulator.
type BacktestRequest struct {
	Bars            []models.Bar    `json:"bars"`
	Signals         []int           `json:"signals,omitempty"`
	Strategy        *StrategyParams `json:"strategy,omitempty"`
	Risk            RiskParams      `json:"risk"`
	StartingBalance float64         `json:"starting_balance,omitempty"`
}

// BacktestResponse carries one completed run.
type BacktestResponse struct {
	RunID   string               `json:"run_id"`
	Equity  []models.EquityPoint `json:"equity_curve"`
	Trades  []models.Trade       `json:"trades"`
	Metrics backtest.Metrics     `json:"metrics"`
}

// RunBacktest handles POST /api/v1/backtest
func (h *BacktestHandler) RunBacktest(w http.ResponseWriter, r *http.Request) {
	var req BacktestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Bars) == 0 {
		respondWithError(w, http.StatusBadRequest, "bars must not be empty")
		return
	}

	ts, open, high, low, closes := data.Split(req.Bars)

	signals := req.Signals
	if signals == nil {
		if req.Strategy == nil {
			respondWithError(w, http.StatusBadRequest, "either signals or strategy is required")
			return
		}
		var err error
		signals, err = buildSignals(closes, req.Strategy)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	cfg := backtest.Config{
		StopLoss:        req.Risk.StopLoss,
		TakeProfit:      req.Risk.TakeProfit,
		AllowShort:      req.Risk.AllowShort,
		StartingBalance: req.StartingBalance,
	}
	in := backtest.Input{
		Timestamps: ts,
		Open:       open,
		High:       high,
		Low:        low,
		Close:      closes,
		Signals:    signals,
	}

	mode := "fixed"
	if req.Risk.ATRStopMultiplier > 0 {
		mode = "atr"
		period := req.Risk.ATRPeriod
		if period == 0 {
			period = 14
		}
		atr, err := backtest.ATRStopSeries(high, low, closes, period)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		cfg.UseATR = true
		cfg.StopLoss = req.Risk.ATRStopMultiplier
		cfg.TakeProfit = req.Risk.ATRTakeMultiplier
		in.ATR = atr
	}

	start := time.Now()
	result, err := backtest.Simulate(in, cfg)
	telemetry.SimulationDuration.Observe(time.Since(start).Seconds())
	telemetry.SimulationsTotal.WithLabelValues(mode, telemetry.StatusLabel(err)).Inc()
	if err != nil {
		if errors.Is(err, models.ErrInvalidArgument) {
			respondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondWithError(w, http.StatusInternalServerError, "Simulation failed")
		return
	}

	runID := uuid.New().String()
	logger.Info("Backtest run completed",
		logger.String("run_id", runID),
		logger.String("mode", mode),
		logger.Int("bars", len(req.Bars)),
		logger.Int("trades", len(result.Trades)),
	)

	respondWithJSON(w, http.StatusOK, BacktestResponse{
		RunID:   runID,
		Equity:  result.Equity,
		Trades:  result.Trades,
		Metrics: backtest.ComputeMetrics(result.Equity, result.Trades),
	})
}

// IndicatorHandler serves batch indicator computations
type IndicatorHandler struct{}

// NewIndicatorHandler creates a new indicator handler
func NewIndicatorHandler() *IndicatorHandler {
	return &IndicatorHandler{}
}

// IndicatorRequest is the POST /api/v1/indicators/{name} body. Values
// drives sma/ema/rsi/stddev; High/Low/Close drive atr.
type IndicatorRequest struct {
	Values []float64 `json:"values,omitempty"`
	High   []float64 `json:"high,omitempty"`
	Low    []float64 `json:"low,omitempty"`
	Close  []float64 `json:"close,omitempty"`
	Period int       `json:"period"`
}

// IndicatorResponse returns the computed series. Undefined (warm-up or
// NaN-contaminated) positions are null.
type IndicatorResponse struct {
	Indicator string     `json:"indicator"`
	Period    int        `json:"period"`
	Values    []*float64 `json:"values"`
}

// Compute handles POST /api/v1/indicators/{name}
func (h *IndicatorHandler) Compute(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	var req IndicatorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var out []float64
	var err error
	switch name {
	case "sma":
		out, err = indicator.SMA(req.Values, req.Period)
	case "ema":
		out, err = indicator.EMA(req.Values, req.Period)
	case "rsi":
		out, err = indicator.RSI(req.Values, req.Period)
	case "stddev":
		out, err = indicator.StdDev(req.Values, req.Period)
	case "atr":
		out, err = indicator.ATR(req.High, req.Low, req.Close, req.Period)
	default:
		respondWithError(w, http.StatusNotFound, "Unknown indicator")
		return
	}

	telemetry.IndicatorComputationsTotal.WithLabelValues(name, telemetry.StatusLabel(err)).Inc()
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, IndicatorResponse{
		Indicator: name,
		Period:    req.Period,
		Values:    nullableSeries(out),
	})
}

func buildSignals(closes []float64, params *StrategyParams) ([]int, error) {
	switch params.Name {
	case "ma_crossover":
		return strategy.MACrossover(closes, params.ShortWindow, params.LongWindow)
	case "volatility":
		return strategy.VolatilityBreakout(closes, params.Window, params.BandK)
	default:
		return nil, errors.New("unknown strategy: " + params.Name)
	}
}

// nullableSeries converts a series to JSON-safe pointers: NaN becomes null.
func nullableSeries(values []float64) []*float64 {
	out := make([]*float64, len(values))
	for i := range values {
		if math.IsNaN(values[i]) {
			continue
		}
		v := values[i]
		out[i] = &v
	}
	return out
}
