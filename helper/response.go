package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"efmode-api-io/api/logger"
)

type ErrorResponse struct {
	Error   string                 `json:"error"`
	Details []InputValidationError `json:"details,omitempty"`
}

func HandleError(c *gin.Context, statusCode int, err error, message string) {
	log := logger.GetLogger()
	if scoped, ok := c.Get("logger"); ok {
		if requestLog, ok := scoped.(*zap.Logger); ok {
			log = requestLog
		}
	}
	log.Error(message, zap.Error(err))

	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Error: message,
	})
}

// HandleValidationError reports every violated field back to the client.
func HandleValidationError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: FormatValidationErrors(err),
	})
}
