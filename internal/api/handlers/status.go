package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ak270/grid-trader-pro/internal/api/models"
	"github.com/Ak270/grid-trader-pro/internal/engine"
)

// StatusHandler exposes engine state and the start/stop controls.
type StatusHandler struct {
	engine *engine.Engine
}

func NewStatusHandler(e *engine.Engine) *StatusHandler {
	return &StatusHandler{engine: e}
}

// GetStatus handles GET /api/v1/status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Snapshot())
}

// Start handles POST /api/v1/start.
func (h *StatusHandler) Start(c *gin.Context) {
	if err := h.engine.Start(); err != nil {
		if errors.Is(err, engine.ErrAlreadyRunning) {
			c.JSON(http.StatusConflict, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    "ALREADY_RUNNING",
					Message: err.Error(),
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "START_FAILED",
				Message: err.Error(),
			},
		})
		return
	}
	c.JSON(http.StatusOK, models.ControlResponse{
		Status:       "started",
		TradingState: h.engine.CurrentState().String(),
	})
}

// Stop handles POST /api/v1/stop. Stopping suppresses the next cycle; it
// never interrupts one in progress.
func (h *StatusHandler) Stop(c *gin.Context) {
	h.engine.Stop()
	c.JSON(http.StatusOK, models.ControlResponse{
		Status:       "stopped",
		TradingState: h.engine.CurrentState().String(),
	})
}
