package statistics

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
)

func collect(t *testing.T, equities ...int64) *Collector {
	t.Helper()
	p := portfolio.New(decimal.NewFromInt(equities[0]))
	c := New(p)
	base := time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, eq := range equities[1:] {
		// the position carries the whole equity delta so p.Equity tracks
		// the scripted series
		delta := decimal.NewFromInt(eq - equities[0])
		if i == 0 {
			require.NoError(t, p.TransactPosition(common.Buy, "GOOG", 1, decimal.Zero, decimal.Zero, delta, delta))
		} else {
			require.NoError(t, p.Reprice("GOOG", delta, delta))
		}
		c.Update(base.AddDate(0, 0, i+1), p)
	}
	return c
}

func TestNewBootstraps(t *testing.T) {
	t.Parallel()
	c := New(portfolio.New(decimal.NewFromInt(100000)))
	require.Len(t, c.Equity, 1)
	assert.True(t, c.Timestamps[0].IsZero())
	assert.True(t, c.Equity[0].Equal(decimal.NewFromInt(100000)))
	assert.Zero(t, c.Returns[0])
	assert.True(t, c.Drawdowns[0].IsZero())
}

func TestUpdateDedupsTimestamps(t *testing.T) {
	t.Parallel()
	p := portfolio.New(decimal.NewFromInt(100000))
	c := New(p)
	at := time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)
	c.Update(at, p)
	c.Update(at, p)
	assert.Len(t, c.Equity, 2, "a repeated timestamp must not add a sample")
}

func TestUpdateSeries(t *testing.T) {
	t.Parallel()
	c := collect(t, 100000, 110000, 90000, 95000)
	require.Len(t, c.Equity, 4)
	assert.InDelta(t, 9.0909, c.Returns[1], 1e-9)
	assert.InDelta(t, -22.2222, c.Returns[2], 1e-9)
	assert.True(t, c.HighWaterMarks[2].Equal(decimal.NewFromInt(110000)))
	assert.True(t, c.Drawdowns[2].Equal(decimal.NewFromInt(20000)))
	assert.True(t, c.Drawdowns[3].Equal(decimal.NewFromInt(15000)))
}

func TestResultsMaxDrawdown(t *testing.T) {
	t.Parallel()
	c := collect(t, 100000, 110000, 90000, 95000)
	r := c.Results()
	assert.True(t, r.MaxDrawdown.Equal(decimal.NewFromInt(20000)))
	assert.InDelta(t, 18.1818, r.MaxDrawdownPct, 1e-9, "peak 110000 to trough 90000")
}

func TestResultsDegenerate(t *testing.T) {
	t.Parallel()
	c := New(portfolio.New(decimal.NewFromInt(100000)))
	r := c.Results()
	assert.True(t, math.IsNaN(r.Sharpe), "one sample has no Sharpe")
	assert.True(t, r.MaxDrawdown.IsZero())
	assert.True(t, math.IsNaN(r.MaxDrawdownPct), "no peak before a zero-index trough")
}

func TestSharpeZeroVariance(t *testing.T) {
	t.Parallel()
	c := collect(t, 100000, 100000, 100000)
	assert.True(t, math.IsNaN(c.Results().Sharpe))
}

func TestSharpePositiveDrift(t *testing.T) {
	t.Parallel()
	c := collect(t, 100000, 101000, 103000, 104000)
	sharpe := c.Results().Sharpe
	assert.False(t, math.IsNaN(sharpe))
	assert.Positive(t, sharpe)
}

func TestSaveLoad(t *testing.T) {
	t.Parallel()
	c := collect(t, 100000, 110000, 90000)
	path := filepath.Join(t.TempDir(), "statistics.json")
	require.NoError(t, c.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Len(t, loaded.Equity, len(c.Equity))
	for i := range c.Equity {
		assert.True(t, loaded.Equity[i].Equal(c.Equity[i]))
		assert.True(t, loaded.Timestamps[i].Equal(c.Timestamps[i]))
	}
	assert.Equal(t, c.Returns, loaded.Returns)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
