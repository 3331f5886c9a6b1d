package main

import (
	"fmt"
	"os"
	"time"

	"github.com/zenithalgo/zenith-go/internal/backtest"
	"github.com/zenithalgo/zenith-go/internal/config"
	"github.com/zenithalgo/zenith-go/internal/data"
	"github.com/zenithalgo/zenith-go/internal/strategy"
	"github.com/zenithalgo/zenith-go/internal/telemetry"
	"github.com/zenithalgo/zenith-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.LogLevel, cfg.Environment); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	bc := cfg.Backtest

	logger.Info("Starting backtest run",
		logger.String("data_file", bc.DataFile),
		logger.String("strategy", bc.Strategy),
	)

	bars, err := data.LoadBarsCSV(bc.DataFile)
	if err != nil {
		logger.Fatal("Failed to load bars",
			logger.String("data_file", bc.DataFile),
			logger.ErrorField(err),
		)
	}
	ts, open, high, low, closes := data.Split(bars)

	signals, err := buildSignals(closes, bc)
	if err != nil {
		logger.Fatal("Failed to build signals",
			logger.String("strategy", bc.Strategy),
			logger.ErrorField(err),
		)
	}

	simCfg := backtest.Config{
		StopLoss:        bc.StopLoss,
		TakeProfit:      bc.TakeProfit,
		AllowShort:      bc.AllowShort,
		StartingBalance: bc.StartingBalance,
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
	if bc.ATRStopMultiplier > 0 {
		mode = "atr"
		atr, err := backtest.ATRStopSeries(high, low, closes, bc.ATRPeriod)
		if err != nil {
			logger.Fatal("Failed to compute ATR stops",
				logger.ErrorField(err),
			)
		}
		simCfg.UseATR = true
		simCfg.StopLoss = bc.ATRStopMultiplier
		simCfg.TakeProfit = bc.ATRTakeMultiplier
		in.ATR = atr
	}

	start := time.Now()
	result, err := backtest.Simulate(in, simCfg)
	telemetry.SimulationDuration.Observe(time.Since(start).Seconds())
	telemetry.SimulationsTotal.WithLabelValues(mode, telemetry.StatusLabel(err)).Inc()
	if err != nil {
		logger.Fatal("Simulation failed",
			logger.ErrorField(err),
		)
	}

	metrics := backtest.ComputeMetrics(result.Equity, result.Trades)

	finalEquity := bc.StartingBalance
	if n := len(result.Equity); n > 0 {
		finalEquity = result.Equity[n-1].Equity
	}

	logger.Info("Backtest run completed",
		logger.String("mode", mode),
		logger.Int("bars", len(bars)),
		logger.Int("trades", metrics.TotalTrades),
		logger.Float64("final_equity", finalEquity),
		logger.Float64("total_return", metrics.TotalReturn),
		logger.Float64("max_drawdown", metrics.MaxDrawdown),
		logger.Float64("sharpe_ratio", metrics.Sharpe),
		logger.Float64("win_rate", metrics.WinRate),
	)
}

func buildSignals(closes []float64, bc config.BacktestConfig) ([]int, error) {
	switch bc.Strategy {
	case "ma_crossover":
		return strategy.MACrossover(closes, bc.ShortWindow, bc.LongWindow)
	case "volatility":
		return strategy.VolatilityBreakout(closes, bc.Window, bc.BandK)
	default:
		return nil, fmt.Errorf("unknown strategy %q", bc.Strategy)
	}
}
