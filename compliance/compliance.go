// Package compliance records every executed trade for audit purposes.
// Recording failures must never abort a session; the execution simulator
// logs them and carries on.
package compliance

import (
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
)

// Handler receives every fill produced by the execution simulator
type Handler interface {
	RecordTrade(f fill.Event) error
}
