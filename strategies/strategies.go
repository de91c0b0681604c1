package strategies

import (
	"fmt"
	"strings"

	"github.com/hueyhuilonghan/event-driven-backtester/strategies/buyandhold"
	"github.com/hueyhuilonghan/event-driven-backtester/strategies/rsi"
)

// Settings carries the tunables shared across strategy constructors.
// Zero values select each strategy's documented defaults.
type Settings struct {
	OrderSize int64
	RSIPeriod int
	RSILow    float64
	RSIHigh   float64
}

// LoadStrategyByName returns a fresh instance of the named strategy
func LoadStrategyByName(name string, s Settings) (Handler, error) {
	switch strings.ToLower(name) {
	case buyandhold.Name, "":
		return buyandhold.New(s.OrderSize), nil
	case rsi.Name:
		return rsi.New(s.RSIPeriod, s.RSILow, s.RSIHigh, s.OrderSize), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrStrategyNotFound, name)
	}
}
