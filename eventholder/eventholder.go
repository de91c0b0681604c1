// Package eventholder contains the FIFO event queue drained by the trading
// session. Events generated while processing an event are appended behind
// everything already queued, which is what preserves causality chains
// (bar -> signal -> order -> fill) across interleaved instruments.
package eventholder

import (
	"github.com/hueyhuilonghan/event-driven-backtester/common"
)

// Holder contains the event queue for session processing
type Holder struct {
	queue []common.Event
}

// AppendEvent adds and event to the queue
func (h *Holder) AppendEvent(e common.Event) {
	if e == nil {
		return
	}
	h.queue = append(h.queue, e)
}

// NextEvent removes the current event and returns the next event in the queue.
// A nil return means the queue is empty.
func (h *Holder) NextEvent() common.Event {
	if len(h.queue) == 0 {
		return nil
	}
	e := h.queue[0]
	h.queue = h.queue[1:]
	return e
}

// Len returns the number of events awaiting processing
func (h *Holder) Len() int {
	return len(h.queue)
}

// Reset returns the queue to the default state
func (h *Holder) Reset() {
	h.queue = nil
}
