package backtest

import "github.com/Ak270/grid-trader-pro/internal/model"

// Result is the primary artifact of a backtest run: final accounting plus
// derived performance metrics and the full trade list.
type Result struct {
	InitialCapital float64 `json:"initial_capital"`
	FinalBalance   float64 `json:"final_balance"`
	TotalReturnPct float64 `json:"total_return_pct"`
	ProfitLoss     float64 `json:"profit_loss"`

	NumTrades     int `json:"num_trades"`
	NumBuyTrades  int `json:"num_buy_trades"`
	NumSellTrades int `json:"num_sell_trades"`

	WinRatePct     float64 `json:"win_rate_pct"`
	SharpeRatio    float64 `json:"sharpe_ratio"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	TradesPerMonth float64 `json:"trades_per_month"`

	Trades         []model.Trade `json:"trades"`
	BalanceHistory []float64     `json:"balance_history,omitempty"`

	InventoryRemaining float64 `json:"inventory_remaining"`
	FinalPrice         float64 `json:"final_price"`
}
