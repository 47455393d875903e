package middleware

import (
	"log"
	"net/http"

	"climate-scenarios/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into the module's error envelope, so a crashed
// generation pass still answers with structured JSON instead of a bare 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("[api] panic recovered: %v", recovered)
		msg := "unexpected internal error"
		switch v := recovered.(type) {
		case string:
			msg = v
		case error:
			msg = v.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INTERNAL_ERROR", Message: msg},
		})
	})
}
