package config

import (
	"errors"

	"github.com/hueyhuilonghan/event-driven-backtester/logging"
)

// Session types
const (
	SessionBacktest = "backtest"
	SessionLive     = "live"
)

// Compliance sink selections
const (
	ComplianceCSV    = "csv"
	ComplianceSQLite = "sqlite"
)

var (
	// ErrLiveWithoutEndTime occurs when a live session has no deadline; a
	// live loop would otherwise never terminate
	ErrLiveWithoutEndTime = errors.New("must specify an end session time when live trading")
	errNoTickers          = errors.New("at least one ticker required")
	errBadSessionType     = errors.New("session type must be backtest or live")
	errBadDate            = errors.New("could not parse date")
)

// StrategyConfig selects and tunes the strategy for the session
type StrategyConfig struct {
	Name      string  `mapstructure:"name"`
	OrderSize int64   `mapstructure:"order_size"`
	RSIPeriod int     `mapstructure:"rsi_period"`
	RSILow    float64 `mapstructure:"rsi_low"`
	RSIHigh   float64 `mapstructure:"rsi_high"`
}

// CommissionConfig overrides the reference brokerage schedule
type CommissionConfig struct {
	Minimum           float64 `mapstructure:"minimum"`
	PerShare          float64 `mapstructure:"per_share"`
	ConsiderationRate float64 `mapstructure:"consideration_rate"`
}

// Config is the session configuration surface. Every collaborator the
// engine wires from it has a documented default; only tickers are
// mandatory.
type Config struct {
	OutputDir        string           `mapstructure:"output_dir"`
	DataDir          string           `mapstructure:"data_dir"`
	Tickers          []string         `mapstructure:"tickers"`
	InitialEquity    float64          `mapstructure:"initial_equity"`
	StartDate        string           `mapstructure:"start_date"`
	EndDate          string           `mapstructure:"end_date"`
	SessionType      string           `mapstructure:"session_type"`
	EndSessionTime   string           `mapstructure:"end_session_time"`
	BarPeriodSeconds int64            `mapstructure:"bar_period_seconds"`
	FeedURL          string           `mapstructure:"feed_url"`
	Compliance       string           `mapstructure:"compliance"`
	Strategy         StrategyConfig   `mapstructure:"strategy"`
	Commission       CommissionConfig `mapstructure:"commission"`
	Log              logging.Config   `mapstructure:"log"`
}
