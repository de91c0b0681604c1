package data

import (
	"time"

	"github.com/shopspring/decimal"
)

// Handler is the contract between the session and a source of market data.
// A handler produces a lazy, finite, non-restartable sequence of tick or bar
// events already sorted by time then instrument, and answers "latest price"
// lookups for every instrument it has streamed.
type Handler interface {
	// IsTick distinguishes tick-granularity sources from bar-granularity
	// sources; it decides whether callers mark against bid/ask or last close
	IsTick() bool
	// BestBidAsk returns the most recent top of book for a ticker. ok is
	// false for tickers the source has never streamed.
	BestBidAsk(ticker string) (bid, ask decimal.Decimal, ok bool)
	// LastClose returns the most recent unadjusted close for a ticker
	LastClose(ticker string) (decimal.Decimal, bool)
	// LastTimestamp returns the most recent actual timestamp for a ticker
	LastTimestamp(ticker string) (time.Time, bool)
	// CloseHistory returns every close streamed so far for a ticker, oldest
	// first. Read-only access for strategies.
	CloseHistory(ticker string) []decimal.Decimal
	// StreamNext pushes exactly one next event onto the session's queue, or
	// marks the source exhausted
	StreamNext()
	// Continuing reports false once the source is exhausted
	Continuing() bool
}
