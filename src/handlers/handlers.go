// Package handlers maps HTTP requests onto the services and writes the JSON envelope.
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// bindJSON decodes the body into payload and validates it. An empty body
// decodes as an empty object so required-field messages still apply.
func bindJSON(c *gin.Context, payload any) bool {
	if err := c.ShouldBindJSON(payload); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			_ = c.Error(apperrors.ErrPayloadTooLarge.Wrap(err))
			return false
		}
		_ = c.Error(apperrors.Validation("Request body must be valid JSON").Wrap(err))
		return false
	}
	return check(c, payload)
}

// bindQuery decodes and validates the query string
func bindQuery(c *gin.Context, payload any) bool {
	if err := c.ShouldBindQuery(payload); err != nil {
		_ = c.Error(apperrors.Validation("Invalid query parameters").Wrap(err))
		return false
	}
	return check(c, payload)
}

func check(c *gin.Context, payload any) bool {
	if err := validation.Struct(payload); err != nil {
		_ = c.Error(err)
		return false
	}
	return true
}

// pathID parses the :id parameter. Malformed ids cannot name a stored
// record, so they are reported as not found.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.ErrNotFound)
		return uuid.Nil, false
	}
	return id, true
}
