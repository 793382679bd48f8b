package middleware

import (
	"errors"
	"net/http"

	"go-jobnetwork-backend/internal/delivery/http/response"
	"go-jobnetwork-backend/pkg/apperror"
	"go-jobnetwork-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors appended to the gin context onto the JSON
// envelope. Unexpected errors are logged server-side and surfaced as an
// opaque 500 so no internal detail leaks to the caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code == http.StatusInternalServerError {
				logger.Log.Error("internal error",
					"error", appErr.Err,
					"path", c.FullPath(),
					"request_id", c.GetString("RequestID"),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error",
			"error", err,
			"path", c.FullPath(),
			"request_id", c.GetString("RequestID"),
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
