// Package base provides helpers shared by strategy implementations
package base

import (
	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
)

// Strategy is embedded by concrete strategies
type Strategy struct{}

// NewSignal builds a signal carrying over the ticker and time of the market
// event that triggered it
func (s *Strategy) NewSignal(ev common.DataEvent, direction common.Direction, suggestedQuantity int64) *signal.Signal {
	return &signal.Signal{
		Base: event.Base{
			Symbol: ev.Ticker(),
			Time:   ev.GetTime(),
		},
		Direction:         direction,
		SuggestedQuantity: suggestedQuantity,
	}
}
