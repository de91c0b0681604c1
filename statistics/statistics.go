// Package statistics samples portfolio equity over a session and derives
// the headline performance numbers: annualized Sharpe ratio, drawdown series
// and maximum drawdown. The formulas are intentionally minimal.
package statistics

import (
	"encoding/json"
	"math"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hueyhuilonghan/event-driven-backtester/portfolio"
)

const tradingPeriodsPerYear = 252

// Collector keeps the equity, return, high-water-mark and drawdown series
// for one session. Series index 0 is a bootstrap sample of the initial
// equity against a zero sentinel timestamp.
type Collector struct {
	Timestamps     []time.Time       `json:"timestamps"`
	Equity         []decimal.Decimal `json:"equity"`
	Returns        []float64         `json:"equity-returns"`
	HighWaterMarks []decimal.Decimal `json:"high-water-marks"`
	Drawdowns      []decimal.Decimal `json:"drawdowns"`
	// BenchmarkReturn is the annual benchmark rate excess returns are
	// measured against, e.g. 0.01 for 1%
	BenchmarkReturn float64 `json:"benchmark-return"`
}

// Results holds the headline numbers for a completed session
type Results struct {
	Sharpe         float64         `json:"sharpe"`
	MaxDrawdown    decimal.Decimal `json:"max-drawdown"`
	MaxDrawdownPct float64         `json:"max-drawdown-pct"`
}

// New bootstraps a collector from the portfolio's starting equity so the
// first update computes a meaningful return
func New(p *portfolio.Portfolio) *Collector {
	return &Collector{
		Timestamps:     []time.Time{{}},
		Equity:         []decimal.Decimal{p.Equity},
		Returns:        []float64{0},
		HighWaterMarks: []decimal.Decimal{p.Equity},
		Drawdowns:      []decimal.Decimal{decimal.Zero},
	}
}

// Update appends a new equity sample unless the timestamp matches the last
// recorded one, which dedups repeated marks within the same bar.
//
// The period return divides by the current rather than the previous equity
// value. Existing result sets depend on this convention; do not flip the
// denominator without versioning the output format.
func (c *Collector) Update(timestamp time.Time, p *portfolio.Portfolio) {
	if timestamp.Equal(c.Timestamps[len(c.Timestamps)-1]) {
		return
	}
	equity := p.Equity
	previous := c.Equity[len(c.Equity)-1]
	c.Timestamps = append(c.Timestamps, timestamp)
	c.Equity = append(c.Equity, equity)

	var pct float64
	if !equity.IsZero() {
		pct = equity.Sub(previous).Div(equity).InexactFloat64() * 100
	}
	c.Returns = append(c.Returns, roundTo(pct, 4))

	hwm := c.HighWaterMarks[len(c.HighWaterMarks)-1]
	if equity.GreaterThan(hwm) {
		hwm = equity
	}
	c.HighWaterMarks = append(c.HighWaterMarks, hwm)
	c.Drawdowns = append(c.Drawdowns, hwm.Sub(equity))
}

// Results derives the Sharpe ratio and maximum drawdown from the collected
// series. Degenerate inputs yield NaN rather than an error.
func (c *Collector) Results() Results {
	maxDrawdown, bottom := c.maxDrawdown()
	return Results{
		Sharpe:         c.sharpe(),
		MaxDrawdown:    maxDrawdown,
		MaxDrawdownPct: c.maxDrawdownPct(bottom),
	}
}

// sharpe is the annualized mean excess return over the daily-fraction
// benchmark divided by the sample standard deviation of returns. A series
// with fewer than two samples or zero variance has no defined Sharpe.
func (c *Collector) sharpe() float64 {
	if len(c.Returns) <= 1 {
		return math.NaN()
	}
	excess := make([]float64, len(c.Returns))
	for i := range c.Returns {
		excess[i] = c.Returns[i] - c.BenchmarkReturn/tradingPeriodsPerYear
	}
	std := sampleStdDev(excess)
	if std == 0 {
		return math.NaN()
	}
	return roundTo(math.Sqrt(tradingPeriodsPerYear)*mean(excess)/std, 4)
}

func (c *Collector) maxDrawdown() (decimal.Decimal, int) {
	bottom := 0
	for i := range c.Drawdowns {
		if c.Drawdowns[i].GreaterThan(c.Drawdowns[bottom]) {
			bottom = i
		}
	}
	return c.Drawdowns[bottom], bottom
}

// maxDrawdownPct locates the running maximum equity before the deepest
// drawdown and reports the peak-to-trough percentage drop. With no samples
// before the trough there is no peak and the result is undefined.
func (c *Collector) maxDrawdownPct(bottom int) float64 {
	if bottom == 0 {
		return math.NaN()
	}
	top := 0
	for i := 1; i < bottom; i++ {
		if c.Equity[i].GreaterThan(c.Equity[top]) {
			top = i
		}
	}
	peak := c.Equity[top]
	if peak.IsZero() {
		return math.NaN()
	}
	pct := peak.Sub(c.Equity[bottom]).Div(peak).InexactFloat64() * 100
	return roundTo(pct, 4)
}

// Save serializes the collector to path as JSON
func (c *Collector) Save(path string) error {
	out, err := json.MarshalIndent(c, "", " ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, out, 0o644)
}

// Load restores a collector previously written by Save
func Load(path string) (*Collector, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Collector
	if err = json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev is the n-1 standard deviation of values
func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var sum float64
	for _, v := range values {
		sum += (v - m) * (v - m)
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func roundTo(x float64, places int) float64 {
	if math.IsNaN(x) {
		return x
	}
	pow := math.Pow(10, float64(places))
	return math.Round(x*pow) / pow
}
