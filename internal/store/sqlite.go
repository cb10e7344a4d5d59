// Package store persists completed trades in SQLite. The ledger is
// append-only: rows are never edited or deleted in normal operation.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Ak270/grid-trader-pro/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS trades (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    trade_id        TEXT NOT NULL,
    timestamp       TEXT NOT NULL,
    asset           TEXT NOT NULL,
    side            TEXT NOT NULL,
    price           REAL NOT NULL,
    quantity        REAL NOT NULL,
    cost_or_revenue REAL,
    pnl             REAL,
    gross_gain      REAL,
    created_at      TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_trades_asset ON trades(asset);
`

// SQLiteStore is a TradeStore backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates the database file if needed and ensures the schema exists.
func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty database path")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// The store is written from one loop and read from request handlers;
	// a single connection sidesteps SQLite writer contention.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record appends one trade to the ledger.
func (s *SQLiteStore) Record(t model.Trade) error {
	_, err := s.db.Exec(
		`INSERT INTO trades (trade_id, timestamp, asset, side, price, quantity, cost_or_revenue, pnl, gross_gain)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Timestamp.UTC().Format(time.RFC3339Nano), t.Asset, string(t.Side),
		t.Price, t.Quantity, t.CostOrRevenue, t.RealizedPnl, t.GrossGain,
	)
	if err != nil {
		return fmt.Errorf("record trade %s: %w", t.ID, err)
	}
	return nil
}

// Recent returns up to limit trades, most recent first.
func (s *SQLiteStore) Recent(limit int) ([]model.Trade, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, trade_id, timestamp, asset, side, price, quantity, cost_or_revenue, pnl, gross_gain
		 FROM trades ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrades(rows)
}

// RecentByAsset returns up to limit trades for one asset, most recent first.
func (s *SQLiteStore) RecentByAsset(asset string, limit int) ([]model.Trade, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, trade_id, timestamp, asset, side, price, quantity, cost_or_revenue, pnl, gross_gain
		 FROM trades WHERE asset = ? ORDER BY id DESC LIMIT ?`, asset, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTrades(rows)
}

// Count returns the number of recorded trades.
func (s *SQLiteStore) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&n)
	return n, err
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanTrades(rows *sql.Rows) ([]model.Trade, error) {
	var out []model.Trade
	for rows.Next() {
		var (
			t  model.Trade
			ts string
		)
		if err := rows.Scan(&t.SeqID, &t.ID, &ts, &t.Asset, &t.Side,
			&t.Price, &t.Quantity, &t.CostOrRevenue, &t.RealizedPnl, &t.GrossGain); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("trade %s: bad timestamp %q", t.ID, ts)
		}
		t.Timestamp = parsed
		out = append(out, t)
	}
	return out, rows.Err()
}
