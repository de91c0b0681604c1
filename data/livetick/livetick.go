// Package livetick streams best bid/ask quotes from a websocket feed into
// the session queue. It satisfies the same contract as the historic sources,
// so a live session reuses the backtest loop unchanged.
package livetick

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventholder"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/tick"
)

var errNilQueue = errors.New("nil event queue")

// quoteMessage is the wire payload for one quote update
type quoteMessage struct {
	Ticker string `json:"ticker"`
	Bid    string `json:"bid"`
	Ask    string `json:"ask"`
	TimeMS int64  `json:"time"`
}

// Source reads quote updates from a websocket connection until the session
// deadline passes or the connection drops. Either condition marks the source
// exhausted; neither aborts the session.
type Source struct {
	data.Base
	queue      *eventholder.Holder
	conn       *websocket.Conn
	deadline   time.Time
	continuing bool
	log        zerolog.Logger
}

// Connect dials the quote feed and returns a streaming source. The deadline
// bounds the live session; reads past it mark exhaustion.
func Connect(queue *eventholder.Holder, url string, deadline time.Time, log zerolog.Logger) (*Source, error) {
	if queue == nil {
		return nil, fmt.Errorf("livetick: %w", errNilQueue)
	}
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("livetick: dial %v: %w", url, err)
	}
	return &Source{
		queue:      queue,
		conn:       conn,
		deadline:   deadline,
		continuing: true,
		log:        log,
	}, nil
}

// IsTick reports that this is a tick-granularity source
func (s *Source) IsTick() bool {
	return true
}

// Continuing reports whether the feed is still delivering quotes
func (s *Source) Continuing() bool {
	return s.continuing
}

// StreamNext reads one quote from the feed and places the resulting tick
// event onto the queue. Read failures and deadline expiry end the stream.
func (s *Source) StreamNext() {
	if !s.deadline.IsZero() && !time.Now().Before(s.deadline) {
		s.close()
		return
	}
	if !s.deadline.IsZero() {
		if err := s.conn.SetReadDeadline(s.deadline); err != nil {
			s.log.Warn().Err(err).Msg("livetick: could not set read deadline")
		}
	}
	var msg quoteMessage
	if err := s.conn.ReadJSON(&msg); err != nil {
		s.log.Warn().Err(err).Msg("livetick: feed closed")
		s.close()
		return
	}
	bid, err := decimal.NewFromString(msg.Bid)
	if err != nil {
		s.log.Warn().Str("ticker", msg.Ticker).Err(err).Msg("livetick: bad bid, quote dropped")
		return
	}
	ask, err := decimal.NewFromString(msg.Ask)
	if err != nil {
		s.log.Warn().Str("ticker", msg.Ticker).Err(err).Msg("livetick: bad ask, quote dropped")
		return
	}
	t := &tick.Tick{
		Base: event.Base{
			Symbol: msg.Ticker,
			Time:   time.UnixMilli(msg.TimeMS).UTC(),
		},
		Bid: bid,
		Ask: ask,
	}
	s.StoreTick(t)
	s.queue.AppendEvent(t)
}

func (s *Source) close() {
	s.continuing = false
	if s.conn != nil {
		if err := s.conn.Close(); err != nil {
			s.log.Warn().Err(err).Msg("livetick: close")
		}
	}
}
