package buyandhold

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/kline"
)

func bar(ticker string, day int) *kline.Bar {
	return &kline.Bar{
		Base: event.Base{
			Symbol: ticker,
			Time:   time.Date(2016, 1, day, 0, 0, 0, 0, time.UTC),
		},
		Period: 86400,
		Close:  decimal.NewFromInt(50),
	}
}

func TestOnDataBuysOncePerTicker(t *testing.T) {
	t.Parallel()
	s := New(0)

	signals, err := s.OnData(bar("GOOG", 4), nil)
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "GOOG", signals[0].Ticker())
	assert.Equal(t, common.Buy, signals[0].GetDirection())
	assert.Equal(t, DefaultOrderSize, signals[0].GetSuggestedQuantity())

	signals, err = s.OnData(bar("GOOG", 5), nil)
	require.NoError(t, err)
	assert.Empty(t, signals, "already invested")

	signals, err = s.OnData(bar("MSFT", 5), nil)
	require.NoError(t, err)
	require.Len(t, signals, 1, "a new ticker gets its own entry")
	assert.Equal(t, "MSFT", signals[0].Ticker())
}

func TestOnDataNilEvent(t *testing.T) {
	t.Parallel()
	s := New(50)
	_, err := s.OnData(nil, nil)
	assert.ErrorIs(t, err, common.ErrNilEvent)
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	assert.Equal(t, DefaultOrderSize, New(-5).OrderSize)
	assert.Equal(t, int64(250), New(250).OrderSize)
}
