package portfolio

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
)

// SetupHandler creates a portfolio handler around a fresh portfolio
func SetupHandler(initialCash decimal.Decimal, prices data.Handler, sizer SizeHandler, risk RiskHandler, log zerolog.Logger) (*Handler, error) {
	if prices == nil {
		return nil, errPriceSourceUnset
	}
	if sizer == nil {
		return nil, errSizeManagerUnset
	}
	if risk == nil {
		return nil, errRiskManagerUnset
	}
	return &Handler{
		portfolio: New(initialCash),
		prices:    prices,
		sizer:     sizer,
		risk:      risk,
		log:       log,
	}, nil
}

// Portfolio returns the handler's portfolio for read-only inspection
func (h *Handler) Portfolio() *Portfolio {
	return h.portfolio
}

// OnSignal turns a strategy signal into zero or more orders via the position
// sizer and the risk manager. Orders are returned to the session for
// queueing; the handler never fills anything itself.
func (h *Handler) OnSignal(ev signal.Event) ([]*order.Order, error) {
	if ev == nil {
		return nil, common.ErrNilEvent
	}
	if ev.GetDirection() != common.Buy && ev.GetDirection() != common.Sell {
		return nil, common.ErrInvalidDirection
	}
	initial := &order.Order{
		Base: event.Base{
			Symbol: ev.Ticker(),
			Time:   ev.GetTime(),
		},
		Direction: ev.GetDirection(),
		Quantity:  ev.GetSuggestedQuantity(),
	}
	sized, err := h.sizer.SizeOrder(h.portfolio, initial)
	if err != nil {
		return nil, err
	}
	return h.risk.RefineOrders(h.portfolio, sized)
}

// OnFill translates a fill into a position transaction and rebuilds the
// portfolio aggregates. Market value is seeded from the price source; when
// the source has nothing for the ticker the fill price marks both sides.
func (h *Handler) OnFill(ev fill.Event) error {
	if ev == nil {
		return common.ErrNilEvent
	}
	bid, ask, ok := data.MarkPrice(h.prices, ev.Ticker())
	if !ok {
		h.log.Warn().Str("ticker", ev.Ticker()).Msg("no market data for fill, marking at fill price")
		bid, ask = ev.GetPrice(), ev.GetPrice()
	}
	err := h.portfolio.TransactPosition(ev.GetDirection(), ev.Ticker(), ev.GetQuantity(), ev.GetPrice(), ev.GetCommission(), bid, ask)
	if err != nil {
		h.log.Warn().Str("ticker", ev.Ticker()).Err(err).Msg("fill skipped")
	}
	return nil
}

// UpdatePortfolioValue reprices every open position against the latest
// available prices and rebuilds the aggregates. Called on every market
// event, this is what keeps equity marked to market between fills.
func (h *Handler) UpdatePortfolioValue() {
	for ticker, pos := range h.portfolio.Positions {
		bid, ask, ok := data.MarkPrice(h.prices, ticker)
		if !ok {
			h.log.Warn().Str("ticker", ticker).Msg("no market data to reprice position")
			continue
		}
		pos.Reprice(bid, ask)
	}
	h.portfolio.recompute()
}
