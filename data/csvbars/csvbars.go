// Package csvbars streams historic daily bars out of per-ticker CSV files in
// a manner identical to a live feed, so the rest of the system treats
// historic and live sessions the same way.
package csvbars

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/data"
	"github.com/hueyhuilonghan/event-driven-backtester/eventholder"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/event"
	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/kline"
)

const dateFormat = "2006-01-02"

// Source replays bars loaded from <dir>/<TICKER>.csv files. All subscribed
// tickers are merged into a single stream ordered by timestamp then ticker,
// which keeps replays deterministic.
type Source struct {
	data.Base
	queue      *eventholder.Holder
	stream     []*kline.Bar
	offset     int
	continuing bool
	period     int64
}

// New loads bar data for every subscribed ticker and prepares the merged
// stream. start and end bound the replay inclusively; zero values leave the
// respective side unbounded.
func New(queue *eventholder.Holder, dir string, tickers []string, period int64, start, end time.Time) (*Source, error) {
	if queue == nil {
		return nil, fmt.Errorf("csvbars: %w", errNilQueue)
	}
	if len(tickers) == 0 {
		return nil, errNoTickers
	}
	if period <= 0 {
		period = 86400
	}
	s := &Source{
		queue:      queue,
		continuing: true,
		period:     period,
	}
	for _, ticker := range tickers {
		bars, err := s.loadTicker(dir, ticker, start, end)
		if err != nil {
			return nil, err
		}
		s.stream = append(s.stream, bars...)
	}
	sort.SliceStable(s.stream, func(i, j int) bool {
		if !s.stream[i].GetTime().Equal(s.stream[j].GetTime()) {
			return s.stream[i].GetTime().Before(s.stream[j].GetTime())
		}
		return s.stream[i].Ticker() < s.stream[j].Ticker()
	})
	return s, nil
}

func (s *Source) loadTicker(dir, ticker string, start, end time.Time) ([]*kline.Bar, error) {
	fname := filepath.Join(dir, ticker+".csv")
	f, err := os.Open(fname)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe ticker %v: %w", ticker, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	var bars []*kline.Bar
	for line := 0; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%v line %v: %w", fname, line+1, err)
		}
		if line == 0 && strings.EqualFold(record[0], "date") {
			continue
		}
		bar, err := parseBar(ticker, s.period, record)
		if err != nil {
			return nil, fmt.Errorf("%v line %v: %w", fname, line+1, err)
		}
		if !start.IsZero() && bar.GetTime().Before(start) {
			continue
		}
		if !end.IsZero() && bar.GetTime().After(end) {
			continue
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func parseBar(ticker string, period int64, record []string) (*kline.Bar, error) {
	if len(record) < 6 {
		return nil, errShortRecord
	}
	ts, err := time.Parse(dateFormat, record[0])
	if err != nil {
		return nil, err
	}
	prices := make([]decimal.Decimal, 4)
	for i := range prices {
		prices[i], err = decimal.NewFromString(record[i+1])
		if err != nil {
			return nil, err
		}
	}
	volume, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return nil, err
	}
	bar := &kline.Bar{
		Base:   event.Base{Symbol: ticker, Time: ts},
		Period: period,
		Open:   prices[0],
		High:   prices[1],
		Low:    prices[2],
		Close:  prices[3],
		Volume: volume,
	}
	if len(record) > 6 {
		bar.AdjClose, err = decimal.NewFromString(record[6])
		if err != nil {
			return nil, err
		}
		bar.HasAdjClose = true
	}
	return bar, nil
}

// IsTick reports that this is a bar-granularity source
func (s *Source) IsTick() bool {
	return false
}

// Continuing reports whether the stream has bars remaining
func (s *Source) Continuing() bool {
	return s.continuing
}

// StreamNext places the next bar event onto the event queue, or marks the
// source exhausted once the stream runs out
func (s *Source) StreamNext() {
	if s.offset >= len(s.stream) {
		s.continuing = false
		return
	}
	bar := s.stream[s.offset]
	s.offset++
	s.StoreBar(bar)
	s.queue.AppendEvent(bar)
}
