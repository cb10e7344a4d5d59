package models

import "github.com/Ak270/grid-trader-pro/internal/model"

// BacktestRequest carries a candle series plus grid parameters for
// POST /api/v1/backtest.
type BacktestRequest struct {
	Candles        []model.Candle `json:"candles" binding:"required"`
	GridSpacing    float64        `json:"grid_spacing" binding:"required"`
	GridLevels     int            `json:"grid_levels" binding:"required"`
	InitialCapital float64        `json:"initial_capital" binding:"required"`
	// IncludeBalances controls whether the per-step balance history is
	// echoed back; it can be large for long series.
	IncludeBalances bool `json:"include_balances"`
}
