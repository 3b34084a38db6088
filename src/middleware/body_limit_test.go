package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
)

func TestBodyLimit(t *testing.T) {
	r := newTestEngine(BodyLimit(16))
	r.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				_ = c.Error(apperrors.ErrPayloadTooLarge)
				return
			}
			_ = c.Error(err)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	tests := []struct {
		name          string
		body          string
		contentLength int64
		want          int
	}{
		{"small body", "hello", 5, http.StatusOK},
		{"declared too large", strings.Repeat("a", 32), 32, http.StatusRequestEntityTooLarge},
		{"undeclared too large", strings.Repeat("a", 32), -1, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(tt.body))
			req.ContentLength = tt.contentLength
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if tt.want == http.StatusRequestEntityTooLarge {
				env := decodeEnvelope(t, w)
				if env.Message != "Request body is too large" {
					t.Errorf("unexpected message %q", env.Message)
				}
			}
		})
	}
}
