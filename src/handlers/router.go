package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/middleware"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/services"
)

// Version is reported by the welcome and detailed health endpoints
const Version = "1.0.0"

// Dependencies are the constructed components the router wires together
type Dependencies struct {
	Auth      *services.AuthService
	Inquiries *services.InquiryService
	Content   *services.ContentService
	Pricing   *services.PricingService

	Database DatabaseChecker
	Cache    cache.Store

	PublicLimiter *middleware.IPRateLimiter
	LoginLimiter  *middleware.IPRateLimiter
	// Metrics is optional; nil disables /metrics
	Metrics *middleware.Metrics

	AllowedOrigins []string
	Environment    string
	IsProduction   bool
	// MaxBodyBytes caps request bodies; zero means DefaultMaxBodyBytes
	MaxBodyBytes int64
}

// NewRouter builds the gin engine with every route and middleware
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	if deps.Metrics != nil {
		router.Use(deps.Metrics.Middleware())
	}
	router.Use(middleware.Recovery(deps.IsProduction))
	if len(deps.AllowedOrigins) > 0 {
		router.Use(cors.New(corsConfig(deps.AllowedOrigins)))
	}
	router.Use(middleware.ErrorHandler(deps.IsProduction))
	maxBody := deps.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = middleware.DefaultMaxBodyBytes
	}
	router.Use(middleware.BodyLimit(maxBody))

	healthHandler := NewHealthHandler(deps.Database, deps.Cache, deps.Environment, Version, deps.IsProduction)
	authHandler := NewAuthHandler(deps.Auth)
	inquiryHandler := NewInquiryHandler(deps.Inquiries)
	contentHandler := NewContentHandler(deps.Content)
	pricingHandler := NewPricingHandler(deps.Pricing)

	requireAdmin := middleware.RequireAdmin(deps.Auth)
	staff := middleware.RequireRole(deps.Auth, models.RoleAdmin, models.RoleSuperAdmin)

	router.GET("/", healthHandler.HandleWelcome)
	if deps.Metrics != nil {
		router.GET("/metrics", deps.Metrics.Handler())
	}

	api := router.Group("/api")
	registerHealth(api, healthHandler)

	v1 := api.Group("/v1")
	registerHealth(v1, healthHandler)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", deps.LoginLimiter.Middleware(), authHandler.HandleLogin)
		auth.GET("/me", requireAdmin, authHandler.HandleMe)
		auth.POST("/logout", requireAdmin, authHandler.HandleLogout)
	}

	inquiries := v1.Group("/inquiries")
	{
		inquiries.POST("", deps.PublicLimiter.Middleware(), inquiryHandler.HandleCreate)
		inquiries.GET("", requireAdmin, staff, inquiryHandler.HandleList)
		inquiries.GET("/stats", requireAdmin, staff, inquiryHandler.HandleStats)
		inquiries.GET("/:id", requireAdmin, staff, inquiryHandler.HandleGet)
		inquiries.PUT("/:id", requireAdmin, staff, inquiryHandler.HandleUpdate)
		inquiries.DELETE("/:id", requireAdmin, staff, inquiryHandler.HandleDelete)
	}

	content := v1.Group("/content")
	{
		content.GET("", contentHandler.HandleGetAll)
		content.GET("/:key", contentHandler.HandleGet)
		content.PUT("/:key", requireAdmin, staff, contentHandler.HandleUpdate)
		content.DELETE("/:key", requireAdmin, staff, contentHandler.HandleDelete)
	}

	pricing := v1.Group("/pricing")
	{
		pricing.GET("", pricingHandler.HandleListVisible)
		pricing.GET("/all", requireAdmin, staff, pricingHandler.HandleListAll)
		pricing.POST("", requireAdmin, staff, pricingHandler.HandleCreate)
		pricing.GET("/:id", requireAdmin, staff, pricingHandler.HandleGet)
		pricing.PUT("/:id", requireAdmin, staff, pricingHandler.HandleUpdate)
		pricing.PATCH("/:id/toggle", requireAdmin, staff, pricingHandler.HandleToggle)
		pricing.DELETE("/:id", requireAdmin, staff, pricingHandler.HandleDelete)
	}

	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound.WithMessage(fmt.Sprintf("Route not found: %s", c.Request.URL.Path)))
	})

	return router
}

func registerHealth(group *gin.RouterGroup, h *HealthHandler) {
	group.GET("/health", h.HandleHealth)
	group.GET("/health/detailed", h.HandleDetailed)
	group.GET("/health/ready", h.HandleReady)
	group.GET("/health/live", h.HandleLive)
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader, "Retry-After"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
