package portfolio

import (
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
)

// Position is a single-instrument holding. Quantity is signed: positive for
// long exposure, negative for short. CostBasis and MarketValue carry the
// sign of the exposure, so UnrealizedPNL = MarketValue - CostBasis holds on
// both sides.
type Position struct {
	Ticker          string          `json:"ticker"`
	Quantity        int64           `json:"quantity"`
	AveragePrice    decimal.Decimal `json:"average-price"`
	CostBasis       decimal.Decimal `json:"cost-basis"`
	MarketValue     decimal.Decimal `json:"market-value"`
	UnrealizedPNL   decimal.Decimal `json:"unrealized-pnl"`
	RealizedPNL     decimal.Decimal `json:"realized-pnl"`
	TotalCommission decimal.Decimal `json:"total-commission"`
}

// NewPosition opens a holding from its first transaction and marks it
// against the supplied bid/ask
func NewPosition(direction common.Direction, ticker string, quantity int64, price, commission, bid, ask decimal.Decimal) *Position {
	p := &Position{Ticker: ticker}
	p.Transact(direction, quantity, price, commission)
	p.Reprice(bid, ask)
	return p
}

// Side returns the direction of the current net exposure. A flat position
// reports the side it last held.
func (p *Position) Side() common.Direction {
	if p.Quantity < 0 {
		return common.Sell
	}
	return common.Buy
}

// Transact applies a buy or sell of quantity shares at price. Additions in
// the direction of exposure update the weighted-average price; reductions
// realize P&L against the average price and shrink the cost basis
// proportionally; a transaction past flat closes the whole holding and
// reopens the remainder at the transaction price.
func (p *Position) Transact(direction common.Direction, quantity int64, price, commission decimal.Decimal) {
	signed := quantity
	if direction == common.Sell {
		signed = -quantity
	}
	switch {
	case p.Quantity == 0 || (p.Quantity > 0) == (signed > 0):
		newQuantity := p.Quantity + signed
		if newQuantity != 0 {
			total := p.CostBasis.Add(price.Mul(decimal.NewFromInt(signed)))
			p.AveragePrice = total.Div(decimal.NewFromInt(newQuantity))
		}
		p.Quantity = newQuantity
	case abs(signed) <= abs(p.Quantity):
		p.RealizedPNL = p.RealizedPNL.Add(p.closeOut(abs(signed), price))
		p.Quantity += signed
	default:
		remainder := p.Quantity + signed
		p.RealizedPNL = p.RealizedPNL.Add(p.closeOut(abs(p.Quantity), price))
		p.Quantity = remainder
		p.AveragePrice = price
	}
	if p.Quantity == 0 {
		p.AveragePrice = decimal.Zero
	}
	p.CostBasis = decimal.NewFromInt(p.Quantity).Mul(p.AveragePrice)
	p.TotalCommission = p.TotalCommission.Add(commission)
}

// closeOut returns the P&L realized by closing quantity shares at price
func (p *Position) closeOut(quantity int64, price decimal.Decimal) decimal.Decimal {
	perShare := price.Sub(p.AveragePrice)
	if p.Quantity < 0 {
		perShare = p.AveragePrice.Sub(price)
	}
	return perShare.Mul(decimal.NewFromInt(quantity))
}

// Reprice marks the holding against the latest bid/ask midpoint. It is the
// only place MarketValue and UnrealizedPNL are computed; they are never
// cached across a mutation.
func (p *Position) Reprice(bid, ask decimal.Decimal) {
	midpoint := bid.Add(ask).Div(decimal.NewFromInt(2))
	p.MarketValue = decimal.NewFromInt(p.Quantity).Mul(midpoint)
	p.UnrealizedPNL = p.MarketValue.Sub(p.CostBasis)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
