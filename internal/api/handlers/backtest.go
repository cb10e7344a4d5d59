package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ak270/grid-trader-pro/internal/api/models"
	"github.com/Ak270/grid-trader-pro/internal/backtest"
)

// BacktestHandler runs on-demand backtests. Stateless: every request
// carries its own candles and parameters.
type BacktestHandler struct{}

func NewBacktestHandler() *BacktestHandler {
	return &BacktestHandler{}
}

// RunBacktest handles POST /api/v1/backtest.
func (h *BacktestHandler) RunBacktest(c *gin.Context) {
	var req models.BacktestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	sim, err := backtest.New(req.GridSpacing, req.GridLevels, req.InitialCapital)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, err := sim.Run(req.Candles)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "BACKTEST_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	if !req.IncludeBalances {
		result.BalanceHistory = nil
	}
	c.JSON(http.StatusOK, result)
}
