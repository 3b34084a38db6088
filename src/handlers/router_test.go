package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/middleware"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories/mock"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSecret   = "router-test-secret-that-is-long-enough"
	testEmail    = "owner@nssitecraft.com"
	testPassword = "correct-horse"
)

type fakeDB struct {
	err error
}

func (f *fakeDB) Health(context.Context) error { return f.err }

func (f *fakeDB) Stats() map[string]int32 {
	return map[string]int32{"total_conns": 1}
}

type testEnv struct {
	router    *gin.Engine
	db        *fakeDB
	store     cache.Store
	admins    *mock.AdminRepository
	inquiries *services.InquiryService
	admin     models.Admin
}

type envOptions struct {
	publicMax  int
	loginMax   int
	production bool
	maxBody    int64
}

func newTestEnv(t *testing.T, opts ...envOptions) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	opt := envOptions{publicMax: 100, loginMax: 5}
	if len(opts) > 0 {
		opt = opts[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	adminRepo := mock.NewAdminRepository()
	admin := models.Admin{
		ID:           uuid.New(),
		Name:         "Site Owner",
		Email:        testEmail,
		PasswordHash: string(hash),
		Role:         models.RoleSuperAdmin,
		IsActive:     true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	adminRepo.Seed(admin)

	tokens, err := services.NewTokenManager(testSecret, time.Hour)
	require.NoError(t, err)

	store := cache.NewMemory(time.Minute)
	inquiries := services.NewInquiryService(mock.NewInquiryRepository(), nil, nil, false)

	publicLimiter := middleware.PublicRateLimiter(15*time.Minute, opt.publicMax)
	loginLimiter := middleware.LoginRateLimiter(15*time.Minute, opt.loginMax)
	t.Cleanup(func() {
		publicLimiter.Stop()
		loginLimiter.Stop()
		inquiries.Wait()
	})

	reg := prometheus.NewRegistry()
	db := &fakeDB{}

	router := NewRouter(Dependencies{
		Auth:           services.NewAuthService(services.NewAdminService(adminRepo), tokens, nil),
		Inquiries:      inquiries,
		Content:        services.NewContentService(mock.NewContentRepository(), store, nil),
		Pricing:        services.NewPricingService(mock.NewPricingRepository(), store, nil),
		Database:       db,
		Cache:          store,
		PublicLimiter:  publicLimiter,
		LoginLimiter:   loginLimiter,
		Metrics:        middleware.NewMetrics(reg, reg),
		AllowedOrigins: []string{"http://localhost:3000"},
		Environment:    "test",
		IsProduction:   opt.production,
		MaxBodyBytes:   opt.maxBody,
	})

	return &testEnv{router: router, db: db, store: store, admins: adminRepo, inquiries: inquiries, admin: admin}
}

type result struct {
	Code    int
	Body    map[string]any
	Headers http.Header
}

func (r result) data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

func (r result) message() string {
	m, _ := r.Body["message"].(string)
	return m
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) result {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)

	res := result{Code: w.Code, Headers: w.Header()}
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res.Body), w.Body.String())
	}
	return res
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	res := e.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": testPassword}, "")
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	token, _ := res.data()["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func validInquiryBody() gin.H {
	return gin.H{
		"name":       "Jane Doe",
		"email":      "Jane@Example.com",
		"phone":      "5551234567",
		"message":    "We need a new website for our bakery.",
		"sourcePage": "pricing",
	}
}

func TestWelcomeAndHealth(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Welcome to NS SiteCraft Solutions API", res.message())

	for _, prefix := range []string{"/api", "/api/v1"} {
		res = env.do(t, http.MethodGet, prefix+"/health", nil, "")
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, "NS SiteCraft API is running", res.message())

		res = env.do(t, http.MethodGet, prefix+"/health/live", nil, "")
		assert.Equal(t, true, res.Body["alive"])

		res = env.do(t, http.MethodGet, prefix+"/health/ready", nil, "")
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, true, res.Body["ready"])
	}

	res = env.do(t, http.MethodGet, "/api/health/detailed", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "healthy", res.Body["status"])
	database, _ := res.Body["database"].(map[string]any)
	assert.Equal(t, "connected", database["status"])
	cacheInfo, _ := res.Body["cache"].(map[string]any)
	assert.Equal(t, "connected", cacheInfo["status"])
	assert.Contains(t, res.Body, "uptime")
	assert.Contains(t, res.Body, "system")
}

func TestReadiness_DatabaseDown(t *testing.T) {
	env := newTestEnv(t)
	env.db.err = errors.New("connection refused")

	res := env.do(t, http.MethodGet, "/api/health/ready", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	assert.Equal(t, false, res.Body["ready"])
	assert.Equal(t, "Database not connected", res.message())

	res = env.do(t, http.MethodGet, "/api/health/detailed", nil, "")
	database, _ := res.Body["database"].(map[string]any)
	assert.Equal(t, "disconnected", database["status"])
}

func TestDetailedHealth_InternalsHiddenInProduction(t *testing.T) {
	dev := newTestEnv(t)
	dev.db.err = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	res := dev.do(t, http.MethodGet, "/api/health/detailed", nil, "")
	database, _ := res.Body["database"].(map[string]any)
	system, _ := res.Body["system"].(map[string]any)
	assert.Contains(t, database, "error")
	assert.Contains(t, system, "hostname")

	prod := newTestEnv(t, envOptions{publicMax: 100, loginMax: 5, production: true})
	prod.db.err = errors.New("dial tcp 10.0.0.5:5432: connection refused")
	res = prod.do(t, http.MethodGet, "/api/health/detailed", nil, "")
	database, _ = res.Body["database"].(map[string]any)
	system, _ = res.Body["system"].(map[string]any)
	assert.Equal(t, "disconnected", database["status"])
	assert.NotContains(t, database, "error")
	assert.NotContains(t, system, "hostname")
	assert.Contains(t, system, "goVersion")
}

func TestRequestBodyLimit(t *testing.T) {
	env := newTestEnv(t, envOptions{publicMax: 100, loginMax: 5, maxBody: 512})

	big := gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": strings.Repeat("x", 1024),
	}
	res := env.do(t, http.MethodPost, "/api/v1/inquiries", big, "")
	assert.Equal(t, http.StatusRequestEntityTooLarge, res.Code)
	assert.Equal(t, "Request body is too large", res.message())

	raw, err := json.Marshal(big)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = -1
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code, "undeclared length must be capped while decoding")

	small := gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Looking for a new website for my bakery.",
	}
	res = env.do(t, http.MethodPost, "/api/v1/inquiries", small, "")
	assert.Equal(t, http.StatusCreated, res.Code, res.Body)
}

func TestReadiness_CacheDown(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Close())

	res := env.do(t, http.MethodGet, "/api/health/ready", nil, "")
	assert.Equal(t, http.StatusServiceUnavailable, res.Code)
	assert.Equal(t, "Cache not connected", res.message())
}

func TestUnknownRoute(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodGet, "/api/v1/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, false, res.Body["success"])
	assert.Equal(t, "Route not found: /api/v1/nope", res.message())
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(t, http.MethodGet, "/api/health", nil, "")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/api/health"`)
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/inquiries", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": " OWNER@nssitecraft.com ", "password": testPassword}, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Login successful", res.message())
	admin, _ := res.data()["admin"].(map[string]any)
	assert.Equal(t, testEmail, admin["email"])
	assert.NotContains(t, admin, "password")
	assert.NotContains(t, admin, "passwordHash")

	tests := []struct {
		name string
		body any
		code int
		msg  string
	}{
		{"wrong password", gin.H{"email": testEmail, "password": "wrong-password"}, http.StatusUnauthorized, "Invalid credentials"},
		{"unknown email", gin.H{"email": "ghost@example.com", "password": testPassword}, http.StatusUnauthorized, "Invalid credentials"},
		{"missing fields", gin.H{}, http.StatusBadRequest, "Validation failed"},
		{"malformed json", `{"email":`, http.StatusBadRequest, "Validation failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := env.do(t, http.MethodPost, "/api/v1/auth/login", tt.body, "")
			assert.Equal(t, tt.code, res.Code)
			assert.Equal(t, tt.msg, res.message())
		})
	}
}

func TestLogin_InactiveAdmin(t *testing.T) {
	env := newTestEnv(t)
	inactive := env.admin
	inactive.IsActive = false
	env.admins.Seed(inactive)

	res := env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": testPassword}, "")
	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.Equal(t, "Invalid credentials", res.message())
}

func TestLogin_RateLimitedAfterFailures(t *testing.T) {
	env := newTestEnv(t, envOptions{publicMax: 100, loginMax: 3})

	for i := 0; i < 3; i++ {
		res := env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, res.Code)
	}

	res := env.do(t, http.MethodPost, "/api/v1/auth/login", gin.H{"email": testEmail, "password": testPassword}, "")
	assert.Equal(t, http.StatusTooManyRequests, res.Code)
	assert.Equal(t, "Too many login attempts from this IP, please try again after 15 minutes.", res.message())
}

func TestMeAndLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	res := env.do(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, testEmail, res.data()["email"])

	res = env.do(t, http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Logout successful", res.message())

	// Logout is stateless: the token stays valid until it expires
	res = env.do(t, http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusOK, res.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newTestEnv(t)

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/inquiries"},
		{http.MethodGet, "/api/v1/inquiries/stats"},
		{http.MethodDelete, "/api/v1/inquiries/" + uuid.NewString()},
		{http.MethodPut, "/api/v1/content/about"},
		{http.MethodGet, "/api/v1/pricing/all"},
		{http.MethodPatch, "/api/v1/pricing/" + uuid.NewString() + "/toggle"},
	}
	for _, r := range routes {
		t.Run(r.method+" "+r.path, func(t *testing.T) {
			res := env.do(t, r.method, r.path, nil, "")
			assert.Equal(t, http.StatusUnauthorized, res.Code)
			assert.Equal(t, "Not authorized to access this route", res.message())

			res = env.do(t, r.method, r.path, nil, "not-a-jwt")
			assert.Equal(t, http.StatusUnauthorized, res.Code)
		})
	}
}

func TestInquiryLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	res := env.do(t, http.MethodPost, "/api/v1/inquiries", validInquiryBody(), "")
	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, "Thank you for contacting us! We will get back to you soon.", res.message())
	assert.Equal(t, "jane@example.com", res.data()["email"])
	assert.Len(t, res.data(), 3)
	id, _ := res.data()["id"].(string)
	require.NotEmpty(t, id)

	res = env.do(t, http.MethodGet, "/api/v1/inquiries/"+id, nil, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "new", res.data()["status"])
	assert.Equal(t, "pricing", res.data()["sourcePage"])

	res = env.do(t, http.MethodPut, "/api/v1/inquiries/"+id, gin.H{"status": "contacted", "adminNotes": "Called"}, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "contacted", res.data()["status"])
	assert.Equal(t, "Called", res.data()["adminNotes"])

	res = env.do(t, http.MethodPut, "/api/v1/inquiries/"+id, gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = env.do(t, http.MethodPut, "/api/v1/inquiries/"+id, gin.H{"status": "archived"}, token)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/inquiries/stats", nil, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, float64(1), res.data()["total"])
	byStatus, _ := res.data()["byStatus"].(map[string]any)
	assert.Len(t, byStatus, len(models.InquiryStatuses))
	assert.Equal(t, float64(1), byStatus["contacted"])
	assert.Equal(t, float64(0), byStatus["new"])

	res = env.do(t, http.MethodDelete, "/api/v1/inquiries/"+id, nil, token)
	assert.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Inquiry deleted successfully", res.message())

	res = env.do(t, http.MethodGet, "/api/v1/inquiries/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, "Resource not found", res.message())
}

func TestInquiry_MalformedID(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		res := env.do(t, method, "/api/v1/inquiries/not-a-uuid", nil, token)
		assert.Equal(t, http.StatusNotFound, res.Code)
	}
}

func TestInquiry_ValidationErrorsCollected(t *testing.T) {
	env := newTestEnv(t)

	res := env.do(t, http.MethodPost, "/api/v1/inquiries", gin.H{"email": "not-an-email", "phone": "12", "sourcePage": "blog"}, "")
	require.Equal(t, http.StatusBadRequest, res.Code)
	assert.Equal(t, "Validation failed", res.message())
	errs, _ := res.Body["errors"].([]any)
	assert.GreaterOrEqual(t, len(errs), 4, errs)
}

func TestInquiry_ListPagination(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	for i := 0; i < 3; i++ {
		body := validInquiryBody()
		body["name"] = fmt.Sprintf("Client %d", i)
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/inquiries", body, "").Code)
	}

	res := env.do(t, http.MethodGet, "/api/v1/inquiries?page=2&limit=2&sortBy=name&sortOrder=asc", nil, token)
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "Inquiries retrieved successfully", res.message())

	items, _ := res.Body["data"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "Client 2", items[0].(map[string]any)["name"])

	pagination, _ := res.Body["pagination"].(map[string]any)
	assert.Equal(t, float64(2), pagination["page"])
	assert.Equal(t, float64(2), pagination["limit"])
	assert.Equal(t, float64(3), pagination["total"])
	assert.Equal(t, float64(2), pagination["pages"])

	res = env.do(t, http.MethodGet, "/api/v1/inquiries?limit=500", nil, token)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/inquiries?status=closed", nil, token)
	require.Equal(t, http.StatusOK, res.Code)
	items, _ = res.Body["data"].([]any)
	assert.Empty(t, items)
	assert.NotNil(t, res.Body["data"])
}

func TestInquiry_PublicRateLimit(t *testing.T) {
	env := newTestEnv(t, envOptions{publicMax: 2, loginMax: 5})

	for i := 0; i < 2; i++ {
		require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/api/v1/inquiries", validInquiryBody(), "").Code)
	}

	res := env.do(t, http.MethodPost, "/api/v1/inquiries", validInquiryBody(), "")
	assert.Equal(t, http.StatusTooManyRequests, res.Code)
	assert.Equal(t, "Too many requests from this IP, please try again later.", res.message())
	assert.NotEmpty(t, res.Headers.Get("Retry-After"))
}

func TestContentLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	res := env.do(t, http.MethodPut, "/api/v1/content/About", gin.H{"value": gin.H{"title": "About us"}, "description": "About page"}, token)
	require.Equal(t, http.StatusOK, res.Code, res.Body)
	assert.Equal(t, "Content updated successfully", res.message())
	assert.Equal(t, "about", res.data()["key"])
	assert.Equal(t, float64(1), res.data()["version"])

	res = env.do(t, http.MethodPut, "/api/v1/content/about", gin.H{"value": gin.H{"title": "About us"}}, token)
	assert.Equal(t, float64(1), res.data()["version"])
	assert.Equal(t, "About page", res.data()["description"])

	res = env.do(t, http.MethodPut, "/api/v1/content/about", gin.H{"value": []string{"changed"}}, token)
	assert.Equal(t, float64(2), res.data()["version"])

	res = env.do(t, http.MethodGet, "/api/v1/content", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, []any{"changed"}, res.data()["about"])

	res = env.do(t, http.MethodGet, "/api/v1/content/ABOUT", nil, "")
	assert.Equal(t, http.StatusOK, res.Code)

	res = env.do(t, http.MethodPut, "/api/v1/content/about", gin.H{"description": "no value"}, token)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = env.do(t, http.MethodDelete, "/api/v1/content/about", nil, token)
	assert.Equal(t, http.StatusOK, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/content/about", nil, "")
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/content", nil, "")
	assert.Empty(t, res.data())
}

func TestPricingLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t)

	res := env.do(t, http.MethodPost, "/api/v1/pricing", gin.H{
		"name":         "Starter",
		"priceRange":   "$500 - $1,000",
		"features":     []string{"5 pages", " ", "Hosting"},
		"displayOrder": 1,
	}, token)
	require.Equal(t, http.StatusCreated, res.Code, res.Body)
	assert.Equal(t, "Pricing package created successfully", res.message())
	assert.Equal(t, true, res.data()["isVisible"])
	assert.Equal(t, []any{"5 pages", "Hosting"}, res.data()["features"])
	id, _ := res.data()["id"].(string)

	res = env.do(t, http.MethodPost, "/api/v1/pricing", gin.H{"name": "Hidden", "priceRange": "$1", "isVisible": false}, token)
	require.Equal(t, http.StatusCreated, res.Code)

	res = env.do(t, http.MethodPost, "/api/v1/pricing", gin.H{"priceRange": "$1"}, token)
	assert.Equal(t, http.StatusBadRequest, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/pricing", nil, "")
	require.Equal(t, http.StatusOK, res.Code)
	plans, _ := res.Body["data"].([]any)
	require.Len(t, plans, 1)
	assert.Equal(t, "Starter", plans[0].(map[string]any)["name"])

	res = env.do(t, http.MethodGet, "/api/v1/pricing/all", nil, token)
	plans, _ = res.Body["data"].([]any)
	assert.Len(t, plans, 2)

	res = env.do(t, http.MethodPut, "/api/v1/pricing/"+id, gin.H{"priceRange": "$600 - $1,200"}, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "$600 - $1,200", res.data()["priceRange"])
	assert.Equal(t, "Starter", res.data()["name"])

	res = env.do(t, http.MethodPatch, "/api/v1/pricing/"+id+"/toggle", nil, token)
	require.Equal(t, http.StatusOK, res.Code)
	assert.Equal(t, "Pricing visibility toggled successfully", res.message())
	assert.Equal(t, false, res.data()["isVisible"])
	assert.Equal(t, "$600 - $1,200", res.data()["priceRange"])

	res = env.do(t, http.MethodGet, "/api/v1/pricing", nil, "")
	plans, _ = res.Body["data"].([]any)
	assert.Empty(t, plans)

	res = env.do(t, http.MethodDelete, "/api/v1/pricing/"+id, nil, token)
	assert.Equal(t, http.StatusOK, res.Code)

	res = env.do(t, http.MethodGet, "/api/v1/pricing/"+id, nil, token)
	assert.Equal(t, http.StatusNotFound, res.Code)

	res = env.do(t, http.MethodPatch, "/api/v1/pricing/bogus/toggle", nil, token)
	assert.Equal(t, http.StatusNotFound, res.Code)
}
