// Package size contains the reference position sizer. It follows all
// suggestions from the initial order without modification, which is enough
// for strategies that do not sit inside a larger risk-managed book.
package size

import (
	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
)

// Size is the naive passthrough sizer
type Size struct{}

// SizeOrder returns the initial order unchanged
func (s *Size) SizeOrder(_ *portfolio.Portfolio, initial *order.Order) (*order.Order, error) {
	if initial == nil {
		return nil, common.ErrNilArguments
	}
	return initial, nil
}
