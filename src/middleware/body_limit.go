package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
)

// DefaultMaxBodyBytes caps JSON request bodies
const DefaultMaxBodyBytes int64 = 1 << 20

// BodyLimit rejects bodies declared larger than maxBytes and caps the
// reader for the rest, so oversized chunked bodies fail while decoding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			_ = c.Error(apperrors.ErrPayloadTooLarge)
			c.Abort()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
