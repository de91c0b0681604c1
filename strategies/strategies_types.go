package strategies

import (
	"errors"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
)

// ErrStrategyNotFound is returned when a strategy name has no registered
// implementation
var ErrStrategyNotFound = errors.New("strategy not found")

// Handler maps market events to trade signals. Implementations read recent
// price history through the data handler but never touch portfolio or
// position state; all effects flow through the portfolio handler.
type Handler interface {
	Name() string
	OnData(ev common.DataEvent, prices data.Handler) ([]signal.Event, error)
}
