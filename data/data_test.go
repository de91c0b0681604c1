package data

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/kline"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/tick"
)

type tickBase struct {
	Base
}

func (b *tickBase) IsTick() bool { return true }

func (b *tickBase) StreamNext() {}

func (b *tickBase) Continuing() bool { return false }

type barBase struct {
	Base
}

func (b *barBase) IsTick() bool { return false }

func (b *barBase) StreamNext() {}

func (b *barBase) Continuing() bool { return false }

func TestStoreTick(t *testing.T) {
	t.Parallel()
	var b Base
	_, _, ok := b.BestBidAsk("GOOG")
	assert.False(t, ok)

	now := time.Now()
	b.StoreTick(&tick.Tick{
		Base: event.Base{Symbol: "GOOG", Time: now},
		Bid:  decimal.NewFromFloat(705.46),
		Ask:  decimal.NewFromFloat(705.48),
	})
	bid, ask, ok := b.BestBidAsk("GOOG")
	require.True(t, ok)
	assert.True(t, bid.Equal(decimal.NewFromFloat(705.46)))
	assert.True(t, ask.Equal(decimal.NewFromFloat(705.48)))

	ts, ok := b.LastTimestamp("GOOG")
	require.True(t, ok)
	assert.Equal(t, now, ts)

	_, ok = b.LastClose("GOOG")
	assert.False(t, ok, "a tick carries no close")
}

func TestStoreBar(t *testing.T) {
	t.Parallel()
	var b Base
	day := time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)
	for i, c := range []int64{50, 52, 51} {
		b.StoreBar(&kline.Bar{
			Base:   event.Base{Symbol: "MSFT", Time: day.AddDate(0, 0, i)},
			Period: 86400,
			Close:  decimal.NewFromInt(c),
		})
	}
	c, ok := b.LastClose("MSFT")
	require.True(t, ok)
	assert.True(t, c.Equal(decimal.NewFromInt(51)))

	history := b.CloseHistory("MSFT")
	require.Len(t, history, 3)
	assert.True(t, history[0].Equal(decimal.NewFromInt(50)))
	assert.Nil(t, b.CloseHistory("GOOG"))
}

func TestMarkPrice(t *testing.T) {
	t.Parallel()
	ticks := &tickBase{}
	ticks.StoreTick(&tick.Tick{
		Base: event.Base{Symbol: "GOOG", Time: time.Now()},
		Bid:  decimal.NewFromInt(50),
		Ask:  decimal.NewFromInt(52),
	})
	bid, ask, ok := MarkPrice(ticks, "GOOG")
	require.True(t, ok)
	assert.True(t, bid.Equal(decimal.NewFromInt(50)))
	assert.True(t, ask.Equal(decimal.NewFromInt(52)))

	bars := &barBase{}
	bars.StoreBar(&kline.Bar{
		Base:   event.Base{Symbol: "MSFT", Time: time.Now()},
		Period: 86400,
		Close:  decimal.NewFromInt(30),
	})
	bid, ask, ok = MarkPrice(bars, "MSFT")
	require.True(t, ok)
	assert.True(t, bid.Equal(decimal.NewFromInt(30)), "bar sources mark both sides at the close")
	assert.True(t, ask.Equal(decimal.NewFromInt(30)))

	_, _, ok = MarkPrice(bars, "AMZN")
	assert.False(t, ok)
}
