package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/response"
)

// newTestEngine builds an engine with the error envelope wired in front of handlers
func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestIDMiddleware(), ErrorHandler(false))
	r.Use(handlers...)
	return r
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Envelope {
	t.Helper()
	var env response.Envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON body %q: %v", w.Body.String(), err)
	}
	return env
}

// fakeAuthenticator accepts a single token
type fakeAuthenticator struct {
	token string
	admin *models.Admin
}

func (f *fakeAuthenticator) VerifyToken(_ context.Context, token string) (*models.Admin, error) {
	if token != f.token {
		return nil, apperrors.ErrUnauthenticated
	}
	return f.admin, nil
}

func (f *fakeAuthenticator) Authorize(admin *models.Admin, roles ...models.Role) error {
	if admin == nil {
		return apperrors.ErrUnauthenticated
	}
	for _, r := range roles {
		if r == admin.Role {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

func newFakeAuthenticator(role models.Role) *fakeAuthenticator {
	return &fakeAuthenticator{
		token: "good-token",
		admin: &models.Admin{ID: uuid.New(), Email: "staff@example.com", Role: role, IsActive: true},
	}
}
