package signal

import (
	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
)

// Event holds the functions required to handle a strategy signal
type Event interface {
	common.Event
	common.Directioner
	GetSuggestedQuantity() int64
	IsSignal() bool
}

// Signal is sent from a strategy to the portfolio handler and acted upon
// there. SuggestedQuantity of zero leaves sizing entirely to the position
// sizer.
type Signal struct {
	event.Base
	Direction         common.Direction `json:"direction"`
	SuggestedQuantity int64            `json:"suggested-quantity"`
}

// IsSignal returns whether the event is a signal type
func (s *Signal) IsSignal() bool {
	return true
}

// SetDirection sets the direction
func (s *Signal) SetDirection(d common.Direction) {
	s.Direction = d
}

// GetDirection returns the direction
func (s *Signal) GetDirection() common.Direction {
	return s.Direction
}

// GetSuggestedQuantity returns the strategy's suggested transaction size
func (s *Signal) GetSuggestedQuantity() int64 {
	return s.SuggestedQuantity
}
