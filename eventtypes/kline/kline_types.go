package kline

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
)

// Bar is an aggregated open/high/low/close/volume record over a fixed period
type Bar struct {
	event.Base
	Period      int64           `json:"period-seconds"`
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Close       decimal.Decimal `json:"close"`
	Volume      int64           `json:"volume"`
	AdjClose    decimal.Decimal `json:"adj-close,omitempty"`
	HasAdjClose bool            `json:"-"`
}

var periodLabels = map[int64]string{
	1:      "1sec",
	5:      "5sec",
	10:     "10sec",
	30:     "30sec",
	60:     "1min",
	300:    "5min",
	600:    "10min",
	900:    "15min",
	1800:   "30min",
	3600:   "1hr",
	86400:  "1day",
	604800: "1wk",
}

// LatestPrice returns the unadjusted closing price of the bar
func (b *Bar) LatestPrice() decimal.Decimal {
	return b.Close
}

// PeriodLabel creates a human-readable label from the bar's period in
// seconds. Unmapped periods are passed through as "{n}sec"
func (b *Bar) PeriodLabel() string {
	if label, ok := periodLabels[b.Period]; ok {
		return label
	}
	return fmt.Sprintf("%dsec", b.Period)
}
