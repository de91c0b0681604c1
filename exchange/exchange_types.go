package exchange

import (
	"errors"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/compliance"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
)

// DefaultVenue is the venue label stamped on simulated fills
const DefaultVenue = "ARCA"

var (
	errEmptyOrder = errors.New("order has zero quantity")
)

// CommissionModel prices the brokerage cost of a transaction
type CommissionModel interface {
	Calculate(quantity int64, price decimal.Decimal) decimal.Decimal
}

// TieredCommission is a fixed-plus-per-share schedule: PerShare per share
// with a Minimum floor, capped at ConsiderationRate of the trade value
type TieredCommission struct {
	Minimum           decimal.Decimal
	PerShare          decimal.Decimal
	ConsiderationRate decimal.Decimal
}

// NewTieredCommission returns the reference brokerage schedule:
// 0.005/share, minimum 1.00, capped at 0.5% of consideration
func NewTieredCommission() *TieredCommission {
	return &TieredCommission{
		Minimum:           decimal.NewFromInt(1),
		PerShare:          decimal.NewFromFloat(0.005),
		ConsiderationRate: decimal.NewFromFloat(0.005),
	}
}

// Calculate returns the commission for quantity shares at price
func (t *TieredCommission) Calculate(quantity int64, price decimal.Decimal) decimal.Decimal {
	c := t.PerShare.Mul(decimal.NewFromInt(quantity))
	if c.LessThan(t.Minimum) {
		c = t.Minimum
	}
	ceiling := price.Mul(decimal.NewFromInt(quantity)).Mul(t.ConsiderationRate)
	if ceiling.IsPositive() && c.GreaterThan(ceiling) {
		c = ceiling
	}
	return c
}

// Simulated executes orders against the price source, applying the
// commission model and a fixed venue label
type Simulated struct {
	prices     data.Handler
	compliance compliance.Handler
	commission CommissionModel
	venue      string
	log        zerolog.Logger
}
