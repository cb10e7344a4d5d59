package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ak270/grid-trader-pro/internal/api/models"
	"github.com/Ak270/grid-trader-pro/internal/engine"
	"github.com/Ak270/grid-trader-pro/internal/model"
)

// DashboardHandler aggregates live portfolio state and ledger totals.
type DashboardHandler struct {
	engine       *engine.Engine
	store        TradeReader
	startCapital float64
}

func NewDashboardHandler(e *engine.Engine, store TradeReader, startCapital float64) *DashboardHandler {
	return &DashboardHandler{engine: e, store: store, startCapital: startCapital}
}

// GetDashboard handles GET /api/v1/dashboard. Net P&L is taken against the
// configured starting capital; fees and taxes are already deducted inside
// the recorded trades.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snap := h.engine.Snapshot()

	trades, err := h.store.Recent(10000)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	var buys, sells, wins int
	for _, t := range trades {
		switch t.Side {
		case model.SideBuy:
			buys++
		case model.SideSell:
			sells++
			if t.RealizedPnl > 0 {
				wins++
			}
		}
	}
	winRate := 0.0
	if sells > 0 {
		winRate = float64(wins) / float64(sells) * 100
	}

	netPnl := snap.TotalValue - h.startCapital
	netPnlPct := 0.0
	if h.startCapital > 0 {
		netPnlPct = netPnl / h.startCapital * 100
	}

	c.JSON(http.StatusOK, models.DashboardResponse{
		Timestamp:           snap.Timestamp,
		TotalCapital:        snap.TotalCapital,
		TotalInventoryValue: snap.TotalInventoryValue,
		TotalValue:          snap.TotalValue,
		NetPnl:              netPnl,
		NetPnlPct:           netPnlPct,
		NumTrades:           len(trades),
		NumBuyTrades:        buys,
		NumSellTrades:       sells,
		WinRatePct:          winRate,
		TradingActive:       snap.TradingActive,
		LastUpdate:          snap.LastUpdate,
	})
}
