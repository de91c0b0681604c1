package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/compliance"
	"github.com/hueyhuilonghan/event-driven-backtester/config"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/data/csvbars"
	"github.com/hueyhuilonghan/event-driven-backtester/data/livetick"
	"github.com/hueyhuilonghan/event-driven-backtester/eventholder"
	"github.com/hueyhuilonghan/event-driven-backtester/exchange"
	"github.com/hueyhuilonghan/event-driven-backtester/strategies"
)

// NewFromConfig builds a session from the configuration file surface:
// historic CSV bars for a backtest, the websocket tick feed for a live run,
// and the configured strategy, commission schedule and compliance sink.
func NewFromConfig(cfg *config.Config, logger zerolog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("engine: output dir: %w", err)
	}

	queue := &eventholder.Holder{}
	var (
		prices data.Handler
		err    error
	)
	live := cfg.SessionType == config.SessionLive
	if live {
		prices, err = livetick.Connect(queue, cfg.FeedURL, cfg.Deadline(), logger)
	} else {
		prices, err = csvbars.New(queue, cfg.DataDir, cfg.Tickers, cfg.BarPeriodSeconds, cfg.StartTime(), cfg.EndTime())
	}
	if err != nil {
		return nil, err
	}

	strategy, err := strategies.LoadStrategyByName(cfg.Strategy.Name, strategies.Settings{
		OrderSize: cfg.Strategy.OrderSize,
		RSIPeriod: cfg.Strategy.RSIPeriod,
		RSILow:    cfg.Strategy.RSILow,
		RSIHigh:   cfg.Strategy.RSIHigh,
	})
	if err != nil {
		return nil, err
	}

	var sink compliance.Handler
	switch cfg.Compliance {
	case config.ComplianceSQLite:
		sink, err = compliance.NewSQLiteLog(filepath.Join(cfg.OutputDir, "trades.db"))
	default:
		sink, err = compliance.NewCSVLog(cfg.OutputDir)
	}
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		OutputDir:     cfg.OutputDir,
		Tickers:       cfg.Tickers,
		InitialEquity: decimal.NewFromFloat(cfg.InitialEquity),
		Live:          live,
		Deadline:      cfg.Deadline(),
		Strategy:      strategy,
		Queue:         queue,
		Prices:        prices,
		Compliance:    sink,
		Logger:        logger,
	}
	if cfg.Commission != (config.CommissionConfig{}) {
		model := &exchange.TieredCommission{
			Minimum:           decimal.NewFromFloat(cfg.Commission.Minimum),
			PerShare:          decimal.NewFromFloat(cfg.Commission.PerShare),
			ConsiderationRate: decimal.NewFromFloat(cfg.Commission.ConsiderationRate),
		}
		settings.Execution, err = exchange.NewSimulated(prices, sink, model, logger)
		if err != nil {
			return nil, err
		}
	}
	return New(settings)
}
