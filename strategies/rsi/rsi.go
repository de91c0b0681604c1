// Package rsi trades the relative strength index of each instrument's close
// history: buy when the indicator drops to the low threshold, sell the
// holding back when it reaches the high threshold.
package rsi

import (
	"github.com/thrasher-corp/gct-ta/indicators"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
	"github.com/hueyhuilonghan/event-driven-backtester/strategies/base"
)

// Name is the strategy name
const Name = "rsi"

// Strategy implements strategies.Handler
type Strategy struct {
	base.Strategy
	Period    int
	Low       float64
	High      float64
	OrderSize int64
	holding   map[string]bool
}

// New returns an RSI strategy. Zero-valued parameters fall back to the
// conventional 14-period 30/70 thresholds.
func New(period int, low, high float64, orderSize int64) *Strategy {
	if period <= 0 {
		period = 14
	}
	if low <= 0 {
		low = 30
	}
	if high <= 0 {
		high = 70
	}
	if orderSize <= 0 {
		orderSize = 100
	}
	return &Strategy{
		Period:    period,
		Low:       low,
		High:      high,
		OrderSize: orderSize,
		holding:   make(map[string]bool),
	}
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// OnData computes RSI over the close history for the event's ticker and
// emits at most one entry or exit signal
func (s *Strategy) OnData(ev common.DataEvent, prices data.Handler) ([]signal.Event, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	history := prices.CloseHistory(ev.Ticker())
	if len(history) <= s.Period {
		// not enough data for signal generation
		return nil, nil
	}
	closes := make([]float64, len(history))
	for i := range history {
		closes[i] = history[i].InexactFloat64()
	}
	values := indicators.RSI(closes, s.Period)
	latest := values[len(values)-1]
	switch {
	case latest <= s.Low && !s.holding[ev.Ticker()]:
		s.holding[ev.Ticker()] = true
		return []signal.Event{s.NewSignal(ev, common.Buy, s.OrderSize)}, nil
	case latest >= s.High && s.holding[ev.Ticker()]:
		s.holding[ev.Ticker()] = false
		return []signal.Event{s.NewSignal(ev, common.Sell, s.OrderSize)}, nil
	}
	return nil, nil
}
