package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Ak270/grid-trader-pro/internal/api/models"
	"github.com/Ak270/grid-trader-pro/internal/model"
)

// TradeReader is the slice of the trade store the read endpoints need.
type TradeReader interface {
	Recent(limit int) ([]model.Trade, error)
	RecentByAsset(asset string, limit int) ([]model.Trade, error)
}

// TradesHandler serves the recorded trade ledger.
type TradesHandler struct {
	store TradeReader
}

func NewTradesHandler(store TradeReader) *TradesHandler {
	return &TradesHandler{store: store}
}

// ListTrades handles GET /api/v1/trades?limit=N&asset=BTC, most recent
// first.
func (h *TradesHandler) ListTrades(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "INVALID_LIMIT",
					Message: "limit must be a positive integer",
				},
			})
			return
		}
		limit = n
	}

	var (
		trades []model.Trade
		err    error
	)
	if asset := c.Query("asset"); asset != "" {
		trades, err = h.store.RecentByAsset(asset, limit)
	} else {
		trades, err = h.store.Recent(limit)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "STORE_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	c.JSON(http.StatusOK, models.TradesResponse{Trades: trades, Count: len(trades)})
}
