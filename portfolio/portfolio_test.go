package portfolio

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
)

func TestNewPortfolio(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	assert.True(t, p.Cash.Equal(d("100000")))
	assert.True(t, p.Equity.Equal(d("100000")))
	assert.Empty(t, p.Positions)
}

func TestAddPositionDuplicate(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	err := p.AddPosition(common.Buy, "GOOG", 100, d("50"), d("1"), d("50"), d("50"))
	assert.NoError(t, err)
	err = p.AddPosition(common.Buy, "GOOG", 100, d("50"), d("1"), d("50"), d("50"))
	assert.ErrorIs(t, err, ErrPositionExists)
}

func TestModifyPositionMissing(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	err := p.ModifyPosition(common.Buy, "GOOG", 100, d("50"), d("1"), d("50"), d("50"))
	assert.ErrorIs(t, err, ErrPositionMissing)
}

func TestRepriceMissing(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	err := p.Reprice("GOOG", d("50"), d("50"))
	assert.ErrorIs(t, err, ErrPositionMissing)
}

// With zero commission, equity must equal initial cash plus realized plus
// unrealized P&L after any sequence of transactions.
func TestEquityConservation(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	assert.NoError(t, p.TransactPosition(common.Buy, "GOOG", 100, d("50"), decimal.Zero, d("50"), d("50")))
	assert.NoError(t, p.TransactPosition(common.Buy, "MSFT", 200, d("30"), decimal.Zero, d("30"), d("30")))
	assert.NoError(t, p.TransactPosition(common.Sell, "GOOG", 40, d("60"), decimal.Zero, d("60"), d("60")))
	assert.NoError(t, p.Reprice("MSFT", d("28"), d("28")))

	expected := d("100000").Add(p.RealizedPNL).Add(p.UnrealizedPNL)
	assert.True(t, p.Equity.Equal(expected), "equity %v != cash+pnl %v", p.Equity, expected)
}

func TestCommissionReducesEquity(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	assert.NoError(t, p.TransactPosition(common.Buy, "GOOG", 100, d("50"), d("1"), d("50"), d("50")))
	assert.True(t, p.Cash.Equal(d("94999")))
	assert.True(t, p.Equity.Equal(d("99999")))
}

func TestRoundTripTransaction(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	assert.NoError(t, p.TransactPosition(common.Buy, "GOOG", 100, d("50"), decimal.Zero, d("50"), d("50")))
	assert.NoError(t, p.TransactPosition(common.Sell, "GOOG", 100, d("55"), decimal.Zero, d("55"), d("55")))

	pos := p.Positions["GOOG"]
	assert.NotNil(t, pos, "a closed holding stays on the book")
	assert.Equal(t, int64(0), pos.Quantity)
	assert.True(t, p.RealizedPNL.Equal(d("500")))
	assert.True(t, p.Cash.Equal(d("100500")))
	assert.True(t, p.Equity.Equal(d("100500")))
}

func TestRepriceIdempotentAcrossPortfolio(t *testing.T) {
	t.Parallel()
	p := New(d("100000"))
	assert.NoError(t, p.TransactPosition(common.Buy, "GOOG", 100, d("50"), decimal.Zero, d("50"), d("50")))

	assert.NoError(t, p.Reprice("GOOG", d("51"), d("53")))
	equity := p.Equity
	for i := 0; i < 5; i++ {
		assert.NoError(t, p.Reprice("GOOG", d("51"), d("53")))
	}
	assert.True(t, p.Equity.Equal(equity))
	assert.True(t, p.Equity.Equal(d("100200")))
}
