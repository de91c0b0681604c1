// Package config loads the session configuration file and applies the
// documented defaults for everything left unset.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/hueyhuilonghan/event-driven-backtester/logging"
)

const dateFormat = "2006-01-02"

// Default returns a runnable backtest configuration pending tickers
func Default() *Config {
	return &Config{
		OutputDir:        "outputs",
		DataDir:          "data",
		InitialEquity:    100000,
		SessionType:      SessionBacktest,
		BarPeriodSeconds: 86400,
		Compliance:       ComplianceCSV,
		Strategy:         StrategyConfig{Name: "buyandhold", OrderSize: 100},
		Log:              logging.Default(),
	}
}

// Load reads the config file at path, layering it over the defaults
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	def := Default()
	v.SetDefault("output_dir", def.OutputDir)
	v.SetDefault("data_dir", def.DataDir)
	v.SetDefault("initial_equity", def.InitialEquity)
	v.SetDefault("session_type", def.SessionType)
	v.SetDefault("bar_period_seconds", def.BarPeriodSeconds)
	v.SetDefault("compliance", def.Compliance)
	v.SetDefault("strategy.name", def.Strategy.Name)
	v.SetDefault("strategy.order_size", def.Strategy.OrderSize)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.console", def.Log.Console)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.file_path", def.Log.FilePath)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports structural configuration errors. These are the only
// fatal errors the system raises before the loop starts.
func (c *Config) Validate() error {
	if len(c.Tickers) == 0 {
		return errNoTickers
	}
	switch c.SessionType {
	case SessionBacktest:
	case SessionLive:
		if c.EndSessionTime == "" {
			return ErrLiveWithoutEndTime
		}
		if _, err := time.Parse(time.RFC3339, c.EndSessionTime); err != nil {
			return fmt.Errorf("config: end_session_time: %w", err)
		}
	default:
		return fmt.Errorf("%w: %v", errBadSessionType, c.SessionType)
	}
	for _, d := range []string{c.StartDate, c.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(dateFormat, d); err != nil {
			return fmt.Errorf("%w: %v", errBadDate, d)
		}
	}
	return nil
}

// StartTime returns the parsed start date, zero when unset
func (c *Config) StartTime() time.Time {
	t, _ := time.Parse(dateFormat, c.StartDate)
	return t
}

// EndTime returns the parsed end date, zero when unset
func (c *Config) EndTime() time.Time {
	t, _ := time.Parse(dateFormat, c.EndDate)
	return t
}

// Deadline returns the parsed live-session end time, zero when unset
func (c *Config) Deadline() time.Time {
	t, _ := time.Parse(time.RFC3339, c.EndSessionTime)
	return t
}
