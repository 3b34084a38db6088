package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/config"
	"github.com/khabaroff/sitecraft-api/src/database"
	"github.com/khabaroff/sitecraft-api/src/handlers"
	"github.com/khabaroff/sitecraft-api/src/logging"
	"github.com/khabaroff/sitecraft-api/src/middleware"
	"github.com/khabaroff/sitecraft-api/src/repositories/postgres"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize structured logging
	logging.Setup(logging.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		Service:     "sitecraft-api",
		Environment: cfg.Environment,
	})

	log.Info().
		Int("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("log_level", cfg.LogLevel).
		Msg("starting server")

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecretGenerated {
		log.Warn().Msg("JWT_SECRET not set; generated a random secret. Tokens will not survive a restart.")
	}

	// Initialize database (migrations run on connect)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := database.New(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}
	log.Info().Msg("database connected")

	store := cache.New(cfg.RedisURL, cfg.CacheTTL)

	tokens, err := services.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize token manager")
	}

	// Initialize Analytics Service
	analyticsService, err := services.NewAnalyticsService(services.AnalyticsConfig{
		PostHogAPIKey: cfg.PostHogAPIKey,
		PostHogHost:   cfg.PostHogHost,
		Enabled:       cfg.PostHogEnabled,
		Environment:   cfg.Environment,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize analytics service")
	}
	if analyticsService.Enabled() {
		log.Info().Str("host", cfg.PostHogHost).Msg("PostHog analytics enabled")
	} else {
		log.Info().Msg("PostHog analytics disabled")
	}

	// Email notifications are optional
	var notifier services.InquiryNotifier
	if cfg.MailgunAPIKey != "" && cfg.MailgunDomain != "" {
		notifier = services.NewEmailService(services.EmailConfig{
			Domain:     cfg.MailgunDomain,
			APIKey:     cfg.MailgunAPIKey,
			FromEmail:  cfg.MailgunFromEmail,
			FromName:   cfg.MailgunFromName,
			EU:         cfg.MailgunEU,
			AdminEmail: cfg.AdminEmail,
		})
		log.Info().Str("domain", cfg.MailgunDomain).Msg("Mailgun email service initialized")
	} else {
		log.Warn().Msg("Mailgun credentials not configured - inquiry notifications disabled")
	}

	// Initialize services
	pool := db.GetPool()
	adminService := services.NewAdminService(postgres.NewAdminRepository(pool))
	authService := services.NewAuthService(adminService, tokens, analyticsService)
	inquiryService := services.NewInquiryService(postgres.NewInquiryRepository(pool), notifier, analyticsService, cfg.SendInquiryConfirmation)
	contentService := services.NewContentService(postgres.NewContentRepository(pool), store, analyticsService)
	pricingService := services.NewPricingService(postgres.NewPricingRepository(pool), store, analyticsService)

	// Auto-seed a super-admin on first run (if ADMIN_SEED_EMAIL and ADMIN_SEED_PASSWORD are set)
	if cfg.AdminSeedEmail != "" && cfg.AdminSeedPassword != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if _, err := adminService.EnsureSeedAdmin(ctx, cfg.AdminSeedName, cfg.AdminSeedEmail, cfg.AdminSeedPassword); err != nil {
			log.Error().Err(err).Msg("failed to create initial admin user")
		}
		cancel()
	}

	publicLimiter := middleware.PublicRateLimiter(cfg.RateLimitWindow, cfg.RateLimitMaxRequests)
	loginLimiter := middleware.LoginRateLimiter(cfg.AuthRateLimitWindow, cfg.AuthRateLimitMaxAttempts)

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = middleware.NewMetrics(reg, reg)
	}

	router := handlers.NewRouter(handlers.Dependencies{
		Auth:           authService,
		Inquiries:      inquiryService,
		Content:        contentService,
		Pricing:        pricingService,
		Database:       db,
		Cache:          store,
		PublicLimiter:  publicLimiter,
		LoginLimiter:   loginLimiter,
		Metrics:        metrics,
		AllowedOrigins: cfg.AllowedOrigins(),
		Environment:    cfg.Environment,
		IsProduction:   cfg.IsProduction(),
	})

	// Create HTTP server with timeouts (G112: protect from Slowloris attack)
	srv := &http.Server{
		Addr:              ":" + formatPort(cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in goroutine
	go func() {
		log.Info().Int("port", cfg.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
	}

	publicLimiter.Stop()
	loginLimiter.Stop()
	inquiryService.Wait()

	if err := analyticsService.Close(); err != nil {
		log.Error().Err(err).Msg("analytics flush error")
	}
	if err := store.Close(); err != nil {
		log.Error().Err(err).Msg("cache close error")
	}
	db.Close()

	log.Info().Msg("server shut down successfully")
}

func formatPort(port int) string {
	return fmt.Sprintf("%d", port)
}
