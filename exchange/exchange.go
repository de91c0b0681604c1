// Package exchange simulates order execution. Orders are filled by sampling
// the price source rather than by any market impact model: best ask for a
// buy, best bid for a sell, last close when only bar data exists.
package exchange

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/compliance"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
)

// NewSimulated returns an execution simulator. A nil commission model uses
// the reference tiered schedule; a nil compliance sink disables trade
// recording.
func NewSimulated(prices data.Handler, sink compliance.Handler, model CommissionModel, log zerolog.Logger) (*Simulated, error) {
	if prices == nil {
		return nil, common.ErrNilArguments
	}
	if model == nil {
		model = NewTieredCommission()
	}
	return &Simulated{
		prices:     prices,
		compliance: sink,
		commission: model,
		venue:      DefaultVenue,
		log:        log,
	}, nil
}

// ExecuteOrder turns an order into a fill priced off the latest market data.
// The fill timestamp comes from the price source, not the wall clock, so the
// same replay always produces the same trade log. The fill is returned to
// the session for queueing, never applied synchronously.
func (e *Simulated) ExecuteOrder(o order.Event) (*fill.Fill, error) {
	if o == nil {
		return nil, common.ErrNilEvent
	}
	if o.GetQuantity() == 0 {
		return nil, fmt.Errorf("%w: %v", errEmptyOrder, o.Ticker())
	}
	price, err := e.fillPrice(o)
	if err != nil {
		return nil, err
	}
	timestamp, ok := e.prices.LastTimestamp(o.Ticker())
	if !ok {
		return nil, fmt.Errorf("%w: %v", common.ErrNoPriceData, o.Ticker())
	}
	f := &fill.Fill{
		Base: event.Base{
			Symbol: o.Ticker(),
			Time:   timestamp,
		},
		OrderID:    o.GetID(),
		Direction:  o.GetDirection(),
		Quantity:   o.GetQuantity(),
		Exchange:   e.venue,
		Price:      price,
		Commission: e.commission.Calculate(o.GetQuantity(), price),
	}
	if e.compliance != nil {
		if err = e.compliance.RecordTrade(f); err != nil {
			e.log.Warn().Str("ticker", f.Ticker()).Err(err).Msg("could not record trade")
		}
	}
	return f, nil
}

func (e *Simulated) fillPrice(o order.Event) (decimal.Decimal, error) {
	if e.prices.IsTick() {
		bid, ask, ok := e.prices.BestBidAsk(o.Ticker())
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %v", common.ErrNoPriceData, o.Ticker())
		}
		if o.GetDirection() == common.Buy {
			return ask, nil
		}
		return bid, nil
	}
	c, ok := e.prices.LastClose(o.Ticker())
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %v", common.ErrNoPriceData, o.Ticker())
	}
	return c, nil
}
