package models

import (
	"time"

	"github.com/Ak270/grid-trader-pro/internal/model"
)

// ErrorResponse is the error envelope used by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ControlResponse acknowledges a start/stop request.
type ControlResponse struct {
	Status       string `json:"status"`
	TradingState string `json:"trading_state"`
}

// TradesResponse wraps a most-recent-first trade page.
type TradesResponse struct {
	Trades []model.Trade `json:"trades"`
	Count  int           `json:"count"`
}

// DashboardResponse aggregates portfolio and ledger state for the UI.
type DashboardResponse struct {
	Timestamp           time.Time `json:"timestamp"`
	TotalCapital        float64   `json:"total_capital"`
	TotalInventoryValue float64   `json:"total_inventory_value"`
	TotalValue          float64   `json:"total_value"`
	NetPnl              float64   `json:"net_pnl"`
	NetPnlPct           float64   `json:"net_pnl_pct"`
	NumTrades           int       `json:"num_trades"`
	NumBuyTrades        int       `json:"num_buy_trades"`
	NumSellTrades       int       `json:"num_sell_trades"`
	WinRatePct          float64   `json:"win_rate_pct"`
	TradingActive       bool      `json:"trading_active"`
	LastUpdate          time.Time `json:"last_update"`
}
