package event

import (
	"time"
)

// Base is the underlying event across all event types in the backtester
type Base struct {
	Symbol string    `json:"ticker"`
	Time   time.Time `json:"timestamp"`
}

// Ticker returns the instrument the event concerns
func (b *Base) Ticker() string {
	return b.Symbol
}

// GetTime returns the time of the event
func (b *Base) GetTime() time.Time {
	return b.Time
}
