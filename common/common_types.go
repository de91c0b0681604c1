package common

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the side of a signal, order or fill.
type Direction string

const (
	// Buy indicates a long-side transaction
	Buy Direction = "BOT"
	// Sell indicates a short-side transaction
	Sell Direction = "SLD"
)

var (
	// ErrNilArguments is a common error response to highlight that nils were
	// passed in when they should not have been
	ErrNilArguments = errors.New("received nil argument(s)")
	// ErrNilEvent occurs whenever a nil event is received when it shouldn't have been
	ErrNilEvent = errors.New("nil event received")
	// ErrNoPriceData occurs when a price lookup is made for a ticker the
	// price source has never streamed
	ErrNoPriceData = errors.New("no price data for ticker")
	// ErrInvalidDirection occurs when a direction outside of Buy/Sell reaches
	// a handler that requires one
	ErrInvalidDirection = errors.New("invalid direction")
)

// Event is the smallest contract shared by everything that passes through
// the session's queue
type Event interface {
	GetTime() time.Time
	Ticker() string
}

// DataEvent is implemented by market data variants, ticks and bars
type DataEvent interface {
	Event
	LatestPrice() decimal.Decimal
}

// Directioner dictates the side of a signal or order
type Directioner interface {
	SetDirection(Direction)
	GetDirection() Direction
}
