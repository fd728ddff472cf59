package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yungbote/focusbridge-backend/internal/pkg/errors"
	"github.com/yungbote/focusbridge-backend/internal/pkg/logger"
	"github.com/yungbote/focusbridge-backend/internal/pkg/validation"
)

// ErrorHandler is the single boundary turning errors handlers attach via
// c.Error into structured JSON replies. Validation failures keep their field
// details, errors with a declared status keep their message, everything else
// is a logged 500 with a generic body.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	boundaryLog := log.With("middleware", "ErrorHandler")
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var verr *validation.Error
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": verr.Details,
			})
			return
		}

		status := apperrors.StatusCode(err)
		if status >= http.StatusInternalServerError {
			boundaryLog.Error("Request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"status", status,
				"error", err,
			)
			c.JSON(status, gin.H{"error": "Internal server error"})
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
	}
}
