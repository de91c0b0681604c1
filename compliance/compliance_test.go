package compliance

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
)

func sampleFill(t *testing.T) *fill.Fill {
	t.Helper()
	return &fill.Fill{
		Base: event.Base{
			Symbol: "GOOG",
			Time:   time.Date(2016, 2, 10, 14, 30, 0, 0, time.UTC),
		},
		Direction:  common.Buy,
		Quantity:   100,
		Exchange:   "ARCA",
		Price:      decimal.NewFromFloat(705.48),
		Commission: decimal.NewFromInt(1),
	}
}

func TestCSVLog(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	log, err := NewCSVLog(dir)
	require.NoError(t, err)
	require.NoError(t, log.RecordTrade(sampleFill(t)))
	require.NoError(t, log.RecordTrade(sampleFill(t)))

	name := "tradelog_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header plus two trades")
	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, []string{
		"2016-02-10T14:30:00Z", "GOOG", "BOT", "100", "ARCA", "705.48", "1",
	}, records[1])
}

func TestCSVLogTruncatesOnCreate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	log, err := NewCSVLog(dir)
	require.NoError(t, err)
	require.NoError(t, log.RecordTrade(sampleFill(t)))

	// a second session in the same directory starts a fresh log
	log, err = NewCSVLog(dir)
	require.NoError(t, err)
	require.NoError(t, log.RecordTrade(sampleFill(t)))

	name := "tradelog_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	f, err := os.Open(filepath.Join(dir, name))
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestSQLiteLog(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "trades.db")
	log, err := NewSQLiteLog(path)
	require.NoError(t, err)
	defer log.Close()

	require.NoError(t, log.RecordTrade(sampleFill(t)))
	require.NoError(t, log.RecordTrade(sampleFill(t)))

	var count int
	require.NoError(t, log.db.QueryRow("SELECT COUNT(*) FROM trades").Scan(&count))
	assert.Equal(t, 2, count)

	var ticker, action, price string
	var quantity int64
	require.NoError(t, log.db.QueryRow(
		"SELECT ticker, action, quantity, price FROM trades ORDER BY id LIMIT 1",
	).Scan(&ticker, &action, &quantity, &price))
	assert.Equal(t, "GOOG", ticker)
	assert.Equal(t, "BOT", action)
	assert.Equal(t, int64(100), quantity)
	assert.Equal(t, "705.48", price)
}
