package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ak270/grid-trader-pro/internal/api/models"
)

// ErrorHandler turns handler panics into the standard error envelope. An
// unexpected failure in one request must never take the server down.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		msg := "An unexpected error occurred"
		if s, ok := recovered.(string); ok {
			msg = s
		} else if err, ok := recovered.(error); ok {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: msg,
			},
		})
		c.Abort()
	})
}
