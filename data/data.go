package data

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/kline"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/tick"
)

type latest struct {
	bid       decimal.Decimal
	ask       decimal.Decimal
	close     decimal.Decimal
	adjClose  decimal.Decimal
	timestamp time.Time
	hasQuote  bool
	hasClose  bool
	closes    []decimal.Decimal
}

// Base implements the latest-price bookkeeping shared by every data handler.
// Sources embed it and record each event as they stream it.
type Base struct {
	tickers map[string]*latest
}

func (b *Base) lookup(ticker string) *latest {
	if b.tickers == nil {
		b.tickers = make(map[string]*latest)
	}
	l, ok := b.tickers[ticker]
	if !ok {
		l = &latest{}
		b.tickers[ticker] = l
	}
	return l
}

// StoreTick records the bid/ask of a streamed tick event
func (b *Base) StoreTick(t *tick.Tick) {
	l := b.lookup(t.Ticker())
	l.bid = t.Bid
	l.ask = t.Ask
	l.timestamp = t.GetTime()
	l.hasQuote = true
}

// StoreBar records the closing prices of a streamed bar event
func (b *Base) StoreBar(k *kline.Bar) {
	l := b.lookup(k.Ticker())
	l.close = k.Close
	l.adjClose = k.AdjClose
	l.timestamp = k.GetTime()
	l.hasClose = true
	l.closes = append(l.closes, k.Close)
}

// BestBidAsk returns the most recent bid/ask price for a ticker
func (b *Base) BestBidAsk(ticker string) (bid, ask decimal.Decimal, ok bool) {
	l, found := b.tickers[ticker]
	if !found || !l.hasQuote {
		return decimal.Zero, decimal.Zero, false
	}
	return l.bid, l.ask, true
}

// LastClose returns the most recent actual (unadjusted) closing price
func (b *Base) LastClose(ticker string) (decimal.Decimal, bool) {
	l, found := b.tickers[ticker]
	if !found || !l.hasClose {
		return decimal.Zero, false
	}
	return l.close, true
}

// LastTimestamp returns the most recent actual timestamp for a ticker
func (b *Base) LastTimestamp(ticker string) (time.Time, bool) {
	l, found := b.tickers[ticker]
	if !found || l.timestamp.IsZero() {
		return time.Time{}, false
	}
	return l.timestamp, true
}

// CloseHistory returns all closes streamed so far for a ticker, oldest first
func (b *Base) CloseHistory(ticker string) []decimal.Decimal {
	l, found := b.tickers[ticker]
	if !found {
		return nil
	}
	return l.closes
}

// MarkPrice returns the prices a position should be marked against: the top
// of book for tick sources, the last close on both sides for bar sources
func MarkPrice(h Handler, ticker string) (bid, ask decimal.Decimal, ok bool) {
	if h.IsTick() {
		return h.BestBidAsk(ticker)
	}
	c, ok := h.LastClose(ticker)
	return c, c, ok
}
