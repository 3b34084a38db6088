package services

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/posthog/posthog-go"
	"github.com/rs/zerolog/log"
)

// HashEmail returns a hex-encoded SHA-256 hash of the email for use as PostHog distinct ID
func HashEmail(email string) string {
	h := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("%x", h)
}

// AnalyticsService handles product analytics tracking. A nil or disabled
// service silently drops every event.
type AnalyticsService struct {
	client      posthog.Client
	enabled     bool
	environment string
}

type posthogLogger struct{}

func (l posthogLogger) Success(m posthog.APIMessage) {
	log.Debug().Str("type", fmt.Sprintf("%T", m)).Msg("PostHog event delivered")
}

func (l posthogLogger) Failure(m posthog.APIMessage, err error) {
	log.Error().Err(err).Str("type", fmt.Sprintf("%T", m)).Msg("PostHog delivery failed")
}

// AnalyticsConfig holds analytics configuration
type AnalyticsConfig struct {
	PostHogAPIKey string
	PostHogHost   string
	Enabled       bool
	Environment   string
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cfg AnalyticsConfig) (*AnalyticsService, error) {
	if !cfg.Enabled || cfg.PostHogAPIKey == "" {
		return &AnalyticsService{enabled: false}, nil
	}

	client, err := posthog.NewWithConfig(
		cfg.PostHogAPIKey,
		posthog.Config{
			Endpoint:  cfg.PostHogHost,
			Interval:  30 * time.Second,
			BatchSize: 100,
			Callback:  posthogLogger{},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create PostHog client: %w", err)
	}

	return &AnalyticsService{
		client:      client,
		enabled:     true,
		environment: cfg.Environment,
	}, nil
}

// Enabled reports whether events are delivered
func (s *AnalyticsService) Enabled() bool {
	return s != nil && s.enabled
}

// Close flushes pending events and closes client
func (s *AnalyticsService) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.client.Close()
}

// TrackEvent captures a generic event
func (s *AnalyticsService) TrackEvent(ctx context.Context, distinctID, event string, properties map[string]interface{}) {
	if !s.Enabled() {
		return
	}

	if properties == nil {
		properties = make(map[string]interface{})
	}
	properties["timestamp"] = time.Now().Unix()
	properties["environment"] = s.environment

	if err := s.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		log.Error().Err(err).Str("event", event).Msg("PostHog enqueue failed")
	} else {
		log.Debug().Str("event", event).Str("distinct_id", distinctID).Msg("PostHog event enqueued")
	}
}

// Identify sets person properties
func (s *AnalyticsService) Identify(ctx context.Context, distinctID string, properties map[string]interface{}) {
	if !s.Enabled() {
		return
	}

	if err := s.client.Enqueue(posthog.Identify{
		DistinctId: distinctID,
		Properties: properties,
	}); err != nil {
		log.Error().Err(err).Msg("PostHog identify failed")
	}
}

// TrackInquirySubmitted tracks a contact-form submission without sending the raw email
func (s *AnalyticsService) TrackInquirySubmitted(ctx context.Context, inquiry *models.Inquiry) {
	s.TrackEvent(ctx, "email_"+HashEmail(inquiry.Email), "inquiry_submitted", map[string]interface{}{
		"source_page": string(inquiry.SourcePage),
		"has_phone":   inquiry.Phone != "",
	})
}

// TrackAdminLogin tracks a successful staff login
func (s *AnalyticsService) TrackAdminLogin(ctx context.Context, admin *models.Admin) {
	if !s.Enabled() {
		return
	}
	distinctID := "admin_" + admin.ID.String()
	s.Identify(ctx, distinctID, map[string]interface{}{"role": string(admin.Role)})
	s.TrackEvent(ctx, distinctID, "admin_login", nil)
}

// TrackContentChanged tracks a staff edit of site content or pricing
func (s *AnalyticsService) TrackContentChanged(ctx context.Context, resource, action, ref string) {
	s.TrackEvent(ctx, "system", "content_changed", map[string]interface{}{
		"resource": resource,
		"action":   action,
		"ref":      ref,
	})
}
