package compliance

import (
	"database/sql"
	"fmt"
	"time"

	// sqlite driver registration
	_ "github.com/mattn/go-sqlite3"

	"github.com/hueyhuilonghan/event-driven-backtester/eventtypes/fill"
)

const createTradesTable = `
CREATE TABLE IF NOT EXISTS trades (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	ticker TEXT NOT NULL,
	action TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	exchange TEXT NOT NULL,
	price TEXT NOT NULL,
	commission TEXT NOT NULL
);`

// SQLiteLog stores each trade in a sqlite database so an audit trail can be
// queried after the run
type SQLiteLog struct {
	db *sql.DB
}

// NewSQLiteLog opens or creates the trade database at path
func NewSQLiteLog(path string) (*SQLiteLog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("compliance: open %v: %w", path, err)
	}
	if _, err = db.Exec(createTradesTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("compliance: create schema: %w", err)
	}
	return &SQLiteLog{db: db}, nil
}

// RecordTrade inserts one row per fill into the trades table
func (s *SQLiteLog) RecordTrade(ev fill.Event) error {
	_, err := s.db.Exec(
		`INSERT INTO trades (timestamp, ticker, action, quantity, exchange, price, commission)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ev.GetTime().Format(time.RFC3339),
		ev.Ticker(),
		string(ev.GetDirection()),
		ev.GetQuantity(),
		ev.GetExchange(),
		ev.GetPrice().String(),
		ev.GetCommission().String(),
	)
	return err
}

// Close releases the underlying database handle
func (s *SQLiteLog) Close() error {
	return s.db.Close()
}
