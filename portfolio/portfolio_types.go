package portfolio

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
)

var (
	// ErrPositionExists occurs when adding a position for a ticker that is
	// already held
	ErrPositionExists = errors.New("ticker already in the positions list")
	// ErrPositionMissing occurs when modifying a position for a ticker that
	// is not held
	ErrPositionMissing = errors.New("ticker not in the current positions list")
	errSizeManagerUnset = errors.New("size manager unset")
	errRiskManagerUnset = errors.New("risk manager unset")
	errPriceSourceUnset = errors.New("price source unset")
)

// SizeHandler maps a portfolio snapshot and an initial order to a concrete
// order quantity. Purely advisory: implementations must not mutate the
// portfolio.
type SizeHandler interface {
	SizeOrder(p *Portfolio, initial *order.Order) (*order.Order, error)
}

// RiskHandler accepts, adjusts or rejects a sized order, producing zero or
// more orders. Returning an empty slice with a nil error is a veto, not a
// failure.
type RiskHandler interface {
	RefineOrders(p *Portfolio, sized *order.Order) ([]*order.Order, error)
}

// Handler orchestrates signal -> sizer -> risk manager -> order emission and
// fill -> position update, and owns the Portfolio
type Handler struct {
	portfolio *Portfolio
	prices    data.Handler
	sizer     SizeHandler
	risk      RiskHandler
	log       zerolog.Logger
}
