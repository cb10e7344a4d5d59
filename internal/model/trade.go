package model

import "time"

// Side of a trade.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Trade records one executed paper order. A Trade is immutable once
// created; aggregates over trades are always derived, never stored as
// running totals.
//
// CostOrRevenue is the total cash paid for a buy or the net cash received
// for a sell. RealizedPnl is zero for buys; for sells it is the net
// proceeds relative to cost basis. GrossGain is the pre-cost gain of a
// sell and is what win-rate counting looks at (a sell can have a positive
// gross gain and still lose money to fees and taxes).
type Trade struct {
	ID            string    `json:"id"`
	Timestamp     time.Time `json:"timestamp"`
	Asset         string    `json:"asset"`
	Side          Side      `json:"side"`
	Price         float64   `json:"price"`
	Quantity      float64   `json:"quantity"`
	CostOrRevenue float64   `json:"cost_or_revenue"`
	RealizedPnl   float64   `json:"realized_pnl"`
	GrossGain     float64   `json:"gross_gain"`
	// SeqID is the insertion-order id assigned by the trade store; zero
	// until the trade has been durably recorded.
	SeqID int64 `json:"seq_id,omitempty"`
}

// Candle is one OHLC bar of backtest input. Read-only.
type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
}
