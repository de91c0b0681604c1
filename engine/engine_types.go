package engine

import (
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/compliance"
	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventholder"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
	"github.com/hueyhuilonghan/event-driven-backtester/statistics"
	"github.com/hueyhuilonghan/event-driven-backtester/strategies"
)

var (
	// ErrUnsupportedEventKind occurs when an unknown event type reaches the
	// dispatch loop. It signals a wiring bug and is fatal.
	ErrUnsupportedEventKind = errors.New("unsupported event kind")
	// ErrLiveWithoutEndTime occurs when a live session is constructed with
	// no deadline
	ErrLiveWithoutEndTime = errors.New("must specify an end session time when live trading")
	errStrategyUnset      = errors.New("strategy unset")
	errPriceSourceUnset   = errors.New("price source unset")
)

// ExecutionHandler turns an order into a fill by sampling market data
type ExecutionHandler interface {
	ExecuteOrder(o order.Event) (*fill.Fill, error)
}

// Settings configures a trading session. Strategy and Prices are required;
// every other collaborator is default-constructed when nil.
type Settings struct {
	OutputDir     string
	Tickers       []string
	InitialEquity decimal.Decimal
	Live          bool
	// Deadline ends a live session; ignored for backtests
	Deadline time.Time

	Strategy   strategies.Handler
	Queue      *eventholder.Holder
	Prices     data.Handler
	Portfolio  *portfolio.Handler
	Sizer      portfolio.SizeHandler
	Risk       portfolio.RiskHandler
	Compliance compliance.Handler
	Execution  ExecutionHandler
	Statistics *statistics.Collector
	Logger     zerolog.Logger
}

// Session owns the event queue and the dispatch loop for one backtest or
// live run
type Session struct {
	outputDir string
	live      bool
	deadline  time.Time

	strategy   strategies.Handler
	queue      *eventholder.Holder
	prices     data.Handler
	portfolio  *portfolio.Handler
	execution  ExecutionHandler
	statistics *statistics.Collector
	log        zerolog.Logger
}
