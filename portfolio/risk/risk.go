// Package risk contains the reference risk manager. It approves every sized
// order as-is; stricter implementations may split, shrink or veto by
// returning zero orders without error.
package risk

import (
	"github.com/gofrs/uuid"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
)

// Risk is the naive always-approve risk manager
type Risk struct{}

// RefineOrders materialises exactly one order mirroring the sized order,
// assigning its identifier
func (r *Risk) RefineOrders(_ *portfolio.Portfolio, sized *order.Order) ([]*order.Order, error) {
	if sized == nil {
		return nil, common.ErrNilArguments
	}
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	approved := *sized
	approved.ID = id
	return []*order.Order{&approved}, nil
}
