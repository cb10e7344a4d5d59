package engine

import "time"

// PortfolioSnapshot is a point-in-time copy of one asset's account.
type PortfolioSnapshot struct {
	Asset          string  `json:"asset"`
	Capital        float64 `json:"capital"`
	Inventory      float64 `json:"inventory"`
	AvgEntryPrice  float64 `json:"avg_entry_price"`
	LastPrice      float64 `json:"last_price"`
	InventoryValue float64 `json:"inventory_value"`
	TotalValue     float64 `json:"total_value"`
	GridSpacing    float64 `json:"grid_spacing"`
	GridLevels     int     `json:"grid_levels"`
}

// Snapshot is the engine state handed to the presentation layer.
type Snapshot struct {
	Timestamp           time.Time           `json:"timestamp"`
	Portfolios          []PortfolioSnapshot `json:"portfolios"`
	TotalCapital        float64             `json:"total_capital"`
	TotalInventoryValue float64             `json:"total_inventory_value"`
	TotalValue          float64             `json:"total_value"`
	TradingActive       bool                `json:"trading_active"`
	TradingState        string              `json:"trading_state"`
	LastUpdate          time.Time           `json:"last_update"`
	TradeCount          int                 `json:"trade_count"`
}

// Snapshot copies all portfolio states under the read lock, so a reader can
// never observe a trade half-applied.
func (e *Engine) Snapshot() Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()

	snap := Snapshot{
		Timestamp:     e.now(),
		Portfolios:    make([]PortfolioSnapshot, 0, len(e.assets)),
		TradingActive: e.Running(),
		TradingState:  e.CurrentState().String(),
		LastUpdate:    e.lastUpdate,
		TradeCount:    e.tradeCount,
	}
	for _, asset := range e.assets {
		pf := e.portfolios[asset]
		ps := PortfolioSnapshot{
			Asset:          pf.Asset,
			Capital:        pf.Capital,
			Inventory:      pf.Inventory,
			AvgEntryPrice:  pf.AvgEntryPrice,
			LastPrice:      pf.LastPrice,
			InventoryValue: pf.InventoryValue(),
			TotalValue:     pf.TotalValue(),
			GridSpacing:    pf.GridSpacing,
			GridLevels:     pf.GridLevels,
		}
		snap.Portfolios = append(snap.Portfolios, ps)
		snap.TotalCapital += ps.Capital
		snap.TotalInventoryValue += ps.InventoryValue
	}
	snap.TotalValue = snap.TotalCapital + snap.TotalInventoryValue
	return snap
}
