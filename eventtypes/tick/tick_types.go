package tick

import (
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
)

// Tick is a single best-bid/best-ask quote update for one instrument
type Tick struct {
	event.Base
	Bid decimal.Decimal `json:"bid"`
	Ask decimal.Decimal `json:"ask"`
}

// LatestPrice returns the midpoint of the current top of book
func (t *Tick) LatestPrice() decimal.Decimal {
	return t.Bid.Add(t.Ask).Div(decimal.NewFromInt(2))
}
