package compliance

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
)

var csvHeader = []string{"timestamp", "ticker", "action", "quantity", "exchange", "price", "commission"}

// CSVLog appends each trade to a per-day CSV file in the output directory
type CSVLog struct {
	path string
}

// NewCSVLog truncates today's trade log and writes a fresh header
func NewCSVLog(outputDir string) (*CSVLog, error) {
	name := "tradelog_" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c := &CSVLog{path: filepath.Join(outputDir, name)}

	f, err := os.Create(c.path)
	if err != nil {
		return nil, fmt.Errorf("compliance: %w", err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("compliance: %w", err)
	}
	w.Flush()
	return c, w.Error()
}

// RecordTrade appends all details about the fill to the CSV trade log
func (c *CSVLog) RecordTrade(ev fill.Event) error {
	f, err := os.OpenFile(c.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err = w.Write([]string{
		ev.GetTime().Format(time.RFC3339),
		ev.Ticker(),
		string(ev.GetDirection()),
		strconv.FormatInt(ev.GetQuantity(), 10),
		ev.GetExchange(),
		ev.GetPrice().String(),
		ev.GetCommission().String(),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
