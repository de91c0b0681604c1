package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backtester.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
tickers:
  - GOOG
  - MSFT
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GOOG", "MSFT"}, cfg.Tickers)
	assert.Equal(t, "outputs", cfg.OutputDir)
	assert.Equal(t, float64(100000), cfg.InitialEquity)
	assert.Equal(t, SessionBacktest, cfg.SessionType)
	assert.Equal(t, int64(86400), cfg.BarPeriodSeconds)
	assert.Equal(t, ComplianceCSV, cfg.Compliance)
	assert.Equal(t, "buyandhold", cfg.Strategy.Name)
	assert.Equal(t, int64(100), cfg.Strategy.OrderSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
tickers:
  - GOOG
initial_equity: 500000
start_date: "2016-01-04"
end_date: "2016-12-30"
compliance: sqlite
strategy:
  name: rsi
  rsi_period: 7
commission:
  minimum: 2
  per_share: 0.01
  consideration_rate: 0.01
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, float64(500000), cfg.InitialEquity)
	assert.Equal(t, ComplianceSQLite, cfg.Compliance)
	assert.Equal(t, "rsi", cfg.Strategy.Name)
	assert.Equal(t, 7, cfg.Strategy.RSIPeriod)
	assert.Equal(t, 0.01, cfg.Commission.PerShare)
	assert.Equal(t, time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC), cfg.StartTime())
	assert.Equal(t, time.Date(2016, 12, 30, 0, 0, 0, 0, time.UTC), cfg.EndTime())
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	cfg := Default()
	assert.ErrorIs(t, cfg.Validate(), errNoTickers)

	cfg.Tickers = []string{"GOOG"}
	assert.NoError(t, cfg.Validate())

	cfg.SessionType = SessionLive
	assert.ErrorIs(t, cfg.Validate(), ErrLiveWithoutEndTime)

	cfg.EndSessionTime = "not-a-time"
	assert.Error(t, cfg.Validate())

	cfg.EndSessionTime = "2026-08-29T21:00:00Z"
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, time.Date(2026, 8, 29, 21, 0, 0, 0, time.UTC), cfg.Deadline())

	cfg.SessionType = "paper"
	assert.ErrorIs(t, cfg.Validate(), errBadSessionType)

	cfg.SessionType = SessionBacktest
	cfg.StartDate = "04/01/2016"
	assert.ErrorIs(t, cfg.Validate(), errBadDate)
}
