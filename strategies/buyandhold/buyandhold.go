// Package buyandhold is the reference strategy: on the first market event
// seen for each ticker it emits one buy signal, then stays silent for that
// ticker for the rest of the session.
package buyandhold

import (
	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
	"github.com/hueyhuilonghan/event-driven-backtester/strategies/base"
)

// Name is the strategy name
const Name = "buyandhold"

// DefaultOrderSize is the suggested quantity when none is configured
const DefaultOrderSize int64 = 100

// Strategy implements strategies.Handler
type Strategy struct {
	base.Strategy
	OrderSize int64
	invested  map[string]bool
}

// New returns a buy-and-hold strategy suggesting orderSize shares per entry
func New(orderSize int64) *Strategy {
	if orderSize <= 0 {
		orderSize = DefaultOrderSize
	}
	return &Strategy{OrderSize: orderSize, invested: make(map[string]bool)}
}

// Name returns the name of the strategy
func (s *Strategy) Name() string {
	return Name
}

// OnData emits a single buy signal the first time each ticker is seen
func (s *Strategy) OnData(ev common.DataEvent, _ data.Handler) ([]signal.Event, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	if s.invested[ev.Ticker()] {
		return nil, nil
	}
	s.invested[ev.Ticker()] = true
	return []signal.Event{s.NewSignal(ev, common.Buy, s.OrderSize)}, nil
}
