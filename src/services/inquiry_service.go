package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/logging"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

const notifyTimeout = 30 * time.Second

// InquiryNotifier delivers inquiry emails. EmailService implements it.
type InquiryNotifier interface {
	NotifyNewInquiry(ctx context.Context, inquiry *models.Inquiry) error
	SendInquiryConfirmation(ctx context.Context, inquiry *models.Inquiry) error
}

// InquiryService manages contact-form submissions
type InquiryService struct {
	repo             repositories.InquiryRepository
	notifier         InquiryNotifier
	analytics        *AnalyticsService
	sendConfirmation bool
	notifications    sync.WaitGroup
}

// NewInquiryService creates a new inquiry service. notifier may be nil when
// email is not configured.
func NewInquiryService(repo repositories.InquiryRepository, notifier InquiryNotifier, analytics *AnalyticsService, sendConfirmation bool) *InquiryService {
	return &InquiryService{
		repo:             repo,
		notifier:         notifier,
		analytics:        analytics,
		sendConfirmation: sendConfirmation,
	}
}

// Create stores a submission and schedules its notifications without waiting for them
func (s *InquiryService) Create(ctx context.Context, in validation.CreateInquiry) (*models.Inquiry, error) {
	inquiry := &models.Inquiry{
		ID:         uuid.New(),
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		Message:    in.Message,
		SourcePage: in.SourcePage,
		Status:     models.InquiryStatusNew,
	}
	if inquiry.SourcePage == "" {
		inquiry.SourcePage = models.SourcePageContact
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	s.analytics.TrackInquirySubmitted(ctx, inquiry)
	s.notify(*inquiry)
	return inquiry, nil
}

// notify runs detached from the request; failures are only logged
func (s *InquiryService) notify(inquiry models.Inquiry) {
	logger := logging.NewLogger("inquiry_service").With().Str("inquiry_id", inquiry.ID.String()).Logger()
	if s.notifier == nil {
		logger.Warn().Msg("Email not configured. Skipping inquiry notification.")
		return
	}

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error().Interface("panic", r).Msg("Inquiry notification panicked")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := s.notifier.NotifyNewInquiry(ctx, &inquiry); err != nil {
			logger.Error().Err(err).Msg("Failed to send inquiry notification")
		} else {
			logger.Info().Msg("Inquiry notification sent")
		}

		if s.sendConfirmation {
			if err := s.notifier.SendInquiryConfirmation(ctx, &inquiry); err != nil {
				logger.Error().Err(err).Msg("Failed to send inquiry confirmation")
			}
		}
	}()
}

// Wait blocks until in-flight notifications finish
func (s *InquiryService) Wait() {
	s.notifications.Wait()
}

// List returns one page of inquiries and its pagination
func (s *InquiryService) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, models.Pagination, error) {
	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, models.Pagination{}, fmt.Errorf("failed to list inquiries: %w", err)
	}
	if items == nil {
		items = []models.Inquiry{}
	}
	return items, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// GetByID returns a single inquiry
func (s *InquiryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial staff edit
func (s *InquiryService) Update(ctx context.Context, id uuid.UUID, in validation.UpdateInquiry) (*models.Inquiry, error) {
	inquiry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		inquiry.Status = *in.Status
	}
	if in.AdminNotes != nil {
		inquiry.AdminNotes = *in.AdminNotes
	}

	if err := s.repo.Update(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to update inquiry: %w", err)
	}
	return inquiry, nil
}

// Delete removes an inquiry
func (s *InquiryService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Stats counts inquiries per status. Every status is present, zero-filled.
func (s *InquiryService) Stats(ctx context.Context) (*models.InquiryStats, error) {
	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries: %w", err)
	}

	stats := &models.InquiryStats{ByStatus: make(map[models.InquiryStatus]int64, len(models.InquiryStatuses))}
	for _, status := range models.InquiryStatuses {
		stats.ByStatus[status] = counts[status]
		stats.Total += counts[status]
	}
	return stats, nil
}
