package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/logging"
	"github.com/khabaroff/sitecraft-api/src/response"
)

// ErrorHandler turns the last error attached with c.Error into the JSON
// envelope. Internal error text is hidden in production.
func ErrorHandler(isProduction bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		appErr := apperrors.From(err)

		message := appErr.Message
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger := logging.ComponentLogger("error_handler", GetRequestID(c))
			logger.Error().
				Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
			if !isProduction {
				message = err.Error()
			}
		}

		response.Fail(c, appErr.StatusCode, message, appErr.Details)
	}
}

// Recovery converts panics into a 500 envelope
func Recovery(isProduction bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger := logging.ComponentLogger("recovery", GetRequestID(c))
		logger.Error().
			Interface("panic", recovered).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Recovered from panic")

		message := apperrors.ErrInternal.Message
		if !isProduction {
			message = fmt.Sprint(recovered)
		}
		response.Fail(c, http.StatusInternalServerError, message, nil)
	})
}
