package portfolio

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
)

// Portfolio aggregates Positions plus cash. Aggregate values are rebuilt
// from scratch after every mutation rather than adjusted incrementally, so
// small per-step errors cannot compound over a long replay.
type Portfolio struct {
	InitialCash   decimal.Decimal      `json:"initial-cash"`
	Cash          decimal.Decimal      `json:"cash"`
	Equity        decimal.Decimal      `json:"equity"`
	UnrealizedPNL decimal.Decimal      `json:"unrealized-pnl"`
	RealizedPNL   decimal.Decimal      `json:"realized-pnl"`
	Positions     map[string]*Position `json:"positions"`
}

// New returns a portfolio holding only the initial cash
func New(initialCash decimal.Decimal) *Portfolio {
	p := &Portfolio{
		InitialCash: initialCash,
		Positions:   make(map[string]*Position),
	}
	p.recompute()
	return p
}

// recompute rebuilds every aggregate from the initial cash and the current
// positions. Cash commits the cost basis of each open holding, collects
// realized P&L and pays commission; equity marks the whole book to market.
func (p *Portfolio) recompute() {
	p.Cash = p.InitialCash
	p.UnrealizedPNL = decimal.Zero
	p.RealizedPNL = decimal.Zero
	marketValue := decimal.Zero
	for _, pos := range p.Positions {
		p.UnrealizedPNL = p.UnrealizedPNL.Add(pos.UnrealizedPNL)
		p.RealizedPNL = p.RealizedPNL.Add(pos.RealizedPNL)
		p.Cash = p.Cash.Sub(pos.CostBasis).Add(pos.RealizedPNL).Sub(pos.TotalCommission)
		marketValue = marketValue.Add(pos.MarketValue)
	}
	p.Equity = p.Cash.Add(marketValue)
}

// AddPosition opens a new holding for a ticker. Adding a ticker that is
// already held is a recoverable condition: the caller warns and skips.
func (p *Portfolio) AddPosition(direction common.Direction, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal) error {
	if _, ok := p.Positions[ticker]; ok {
		return fmt.Errorf("%w: %v", ErrPositionExists, ticker)
	}
	p.Positions[ticker] = NewPosition(direction, ticker, quantity, price, commission, bid, ask)
	p.recompute()
	return nil
}

// ModifyPosition applies a transaction to an existing holding and reprices
// it against current market data. Modifying a ticker that is not held is a
// recoverable condition: the caller warns and skips.
func (p *Portfolio) ModifyPosition(direction common.Direction, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal) error {
	pos, ok := p.Positions[ticker]
	if !ok {
		return fmt.Errorf("%w: %v", ErrPositionMissing, ticker)
	}
	pos.Transact(direction, quantity, price, commission)
	pos.Reprice(bid, ask)
	p.recompute()
	return nil
}

// TransactPosition routes a transaction to AddPosition or ModifyPosition
// depending on whether the ticker is already held
func (p *Portfolio) TransactPosition(direction common.Direction, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal) error {
	if _, ok := p.Positions[ticker]; ok {
		return p.ModifyPosition(direction, ticker, quantity, price, commission, bid, ask)
	}
	return p.AddPosition(direction, ticker, quantity, price, commission, bid, ask)
}

// Reprice marks one holding against fresh market data and rebuilds the
// aggregates
func (p *Portfolio) Reprice(ticker string, bid, ask decimal.Decimal) error {
	pos, ok := p.Positions[ticker]
	if !ok {
		return fmt.Errorf("%w: %v", ErrPositionMissing, ticker)
	}
	pos.Reprice(bid, ask)
	p.recompute()
	return nil
}
