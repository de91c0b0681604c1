package order

import (
	"github.com/gofrs/uuid"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
)

// Event inherits the common event interfaces along with extra functions
// related to handling orders
type Event interface {
	common.Event
	common.Directioner
	GetID() uuid.UUID
	GetQuantity() int64
	SetQuantity(int64)
	IsOrder() bool
}

// Order contains all details for an order event sent to the execution
// simulator. Quantity is always non-negative; Direction carries the side.
type Order struct {
	event.Base
	ID        uuid.UUID        `json:"id"`
	Direction common.Direction `json:"direction"`
	Quantity  int64            `json:"quantity"`
}

// IsOrder returns whether the event is an order event
func (o *Order) IsOrder() bool {
	return true
}

// GetID returns the order id
func (o *Order) GetID() uuid.UUID {
	return o.ID
}

// SetDirection sets the side of the order
func (o *Order) SetDirection(d common.Direction) {
	o.Direction = d
}

// GetDirection returns the side of the order
func (o *Order) GetDirection() common.Direction {
	return o.Direction
}

// GetQuantity returns the order quantity
func (o *Order) GetQuantity() int64 {
	return o.Quantity
}

// SetQuantity sets the order quantity
func (o *Order) SetQuantity(q int64) {
	o.Quantity = q
}
