// Package engine wires the session components together and drives the
// event loop: price handler -> strategy -> portfolio/risk -> execution ->
// portfolio fill, all through one FIFO queue.
package engine

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/common"
	"github.com/hueyhuilonghan/event-driven-backtester/compliance"
	"github.com/hueyhuilonghan/event-driven-backtester/eventholder"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/order"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/signal"
	"github.com/hueyhuilonghan/event-driven-backtester/exchange"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio/risk"
	"github.com/hueyhuilonghan/event-driven-backtester/portfolio/size"
	"github.com/hueyhuilonghan/event-driven-backtester/statistics"
)

// New resolves the session settings once at startup, constructing defaults
// for every collaborator left unset, and validates the configuration.
// Configuration errors here are fatal; nothing after this point is.
func New(s *Settings) (*Session, error) {
	if s == nil {
		return nil, common.ErrNilArguments
	}
	if s.Strategy == nil {
		return nil, errStrategyUnset
	}
	if s.Live && s.Deadline.IsZero() {
		return nil, ErrLiveWithoutEndTime
	}
	if s.Queue == nil {
		s.Queue = &eventholder.Holder{}
	}
	if s.Prices == nil {
		// the queue and price source are coupled; a default source cannot
		// be constructed without knowing where the data lives
		return nil, errPriceSourceUnset
	}
	if s.InitialEquity.IsZero() {
		s.InitialEquity = decimal.NewFromInt(100000)
	}
	if s.Sizer == nil {
		s.Sizer = &size.Size{}
	}
	if s.Risk == nil {
		s.Risk = &risk.Risk{}
	}
	var err error
	if s.Portfolio == nil {
		s.Portfolio, err = portfolio.SetupHandler(s.InitialEquity, s.Prices, s.Sizer, s.Risk, s.Logger)
		if err != nil {
			return nil, err
		}
	}
	if s.Compliance == nil {
		s.Compliance, err = compliance.NewCSVLog(s.OutputDir)
		if err != nil {
			return nil, err
		}
	}
	if s.Execution == nil {
		s.Execution, err = exchange.NewSimulated(s.Prices, s.Compliance, nil, s.Logger)
		if err != nil {
			return nil, err
		}
	}
	if s.Statistics == nil {
		s.Statistics = statistics.New(s.Portfolio.Portfolio())
	}
	return &Session{
		outputDir:  s.OutputDir,
		live:       s.Live,
		deadline:   s.Deadline,
		strategy:   s.Strategy,
		queue:      s.Queue,
		prices:     s.Prices,
		portfolio:  s.Portfolio,
		execution:  s.Execution,
		statistics: s.Statistics,
		log:        s.Logger,
	}, nil
}

// Statistics returns the session's statistics collector
func (s *Session) Statistics() *statistics.Collector {
	return s.statistics
}

// PortfolioHandler returns the session's portfolio handler
func (s *Session) PortfolioHandler() *portfolio.Handler {
	return s.portfolio
}

func (s *Session) continueLoop() bool {
	if s.live {
		return time.Now().Before(s.deadline)
	}
	return s.prices.Continuing()
}

// Run drains the event queue until the price source is exhausted (backtest)
// or the deadline passes (live). The source is only asked to produce when
// the queue is empty, so exhaustion is observed with the queue drained and
// no derived event is ever dropped.
func (s *Session) Run() error {
	for s.continueLoop() {
		ev := s.queue.NextEvent()
		if ev == nil {
			s.prices.StreamNext()
			continue
		}
		if err := s.dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) dispatch(ev common.Event) error {
	switch e := ev.(type) {
	case common.DataEvent:
		sigs, err := s.strategy.OnData(e, s.prices)
		if err != nil {
			s.log.Warn().Str("ticker", e.Ticker()).Err(err).Msg("strategy error, event skipped")
		}
		for i := range sigs {
			s.queue.AppendEvent(sigs[i])
		}
		s.portfolio.UpdatePortfolioValue()
		s.statistics.Update(e.GetTime(), s.portfolio.Portfolio())
	case signal.Event:
		orders, err := s.portfolio.OnSignal(e)
		if err != nil {
			s.log.Warn().Str("ticker", e.Ticker()).Err(err).Msg("signal rejected")
			return nil
		}
		for i := range orders {
			s.queue.AppendEvent(orders[i])
		}
	case order.Event:
		f, err := s.execution.ExecuteOrder(e)
		if err != nil {
			s.log.Warn().Str("ticker", e.Ticker()).Err(err).Msg("order not executed")
			return nil
		}
		s.queue.AppendEvent(f)
	case fill.Event:
		if err := s.portfolio.OnFill(e); err != nil {
			s.log.Warn().Str("ticker", e.Ticker()).Err(err).Msg("fill not applied")
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedEventKind, ev)
	}
	return nil
}

// StartTrading runs the session, logs the headline results and saves the
// statistics blob to the output directory
func (s *Session) StartTrading() (statistics.Results, error) {
	if s.live {
		s.log.Info().Time("until", s.deadline).Msg("running live session")
	} else {
		s.log.Info().Msg("running backtest")
	}
	if err := s.Run(); err != nil {
		return statistics.Results{}, err
	}
	results := s.statistics.Results()
	s.log.Info().
		Float64("sharpe", results.Sharpe).
		Str("max_drawdown", results.MaxDrawdown.String()).
		Float64("max_drawdown_pct", results.MaxDrawdownPct).
		Msg("session complete")

	statsPath := filepath.Join(s.outputDir, "statistics_"+time.Now().UTC().Format("2006-01-02_150405")+".json")
	if err := s.statistics.Save(statsPath); err != nil {
		s.log.Warn().Err(err).Msg("could not save statistics")
	} else {
		s.log.Info().Str("path", statsPath).Msg("statistics saved")
	}
	return results, nil
}
