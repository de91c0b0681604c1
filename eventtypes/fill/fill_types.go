package fill

import (
	"github.com/gofrs/uuid"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
)

// Event holds all functions required to handle a fill event
type Event interface {
	common.Event
	common.Directioner
	GetOrderID() uuid.UUID
	GetQuantity() int64
	GetExchange() string
	GetPrice() decimal.Decimal
	GetCommission() decimal.Decimal
	IsFill() bool
}

// Fill is the record of an order having been executed by a venue. The Base
// time is the price source's timestamp for the ticker at execution, not wall
// clock, so backtests stay deterministic.
type Fill struct {
	event.Base
	OrderID    uuid.UUID        `json:"order-id"`
	Direction  common.Direction `json:"direction"`
	Quantity   int64            `json:"quantity"`
	Exchange   string           `json:"exchange"`
	Price      decimal.Decimal  `json:"price"`
	Commission decimal.Decimal  `json:"commission"`
}

// IsFill returns whether the event is a fill event
func (f *Fill) IsFill() bool {
	return true
}

// GetOrderID returns the id of the order the fill satisfied
func (f *Fill) GetOrderID() uuid.UUID {
	return f.OrderID
}

// SetDirection sets the side of the fill
func (f *Fill) SetDirection(d common.Direction) {
	f.Direction = d
}

// GetDirection returns the side of the fill
func (f *Fill) GetDirection() common.Direction {
	return f.Direction
}

// GetQuantity returns the filled quantity
func (f *Fill) GetQuantity() int64 {
	return f.Quantity
}

// GetExchange returns the venue the order was filled on
func (f *Fill) GetExchange() string {
	return f.Exchange
}

// GetPrice returns the realized fill price
func (f *Fill) GetPrice() decimal.Decimal {
	return f.Price
}

// GetCommission returns the brokerage commission for the trade
func (f *Fill) GetCommission() decimal.Decimal {
	return f.Commission
}
