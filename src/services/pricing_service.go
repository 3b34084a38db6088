package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// PricingService manages pricing plans
type PricingService struct {
	repo      repositories.PricingRepository
	cache     *readCache
	analytics *AnalyticsService
}

// NewPricingService creates a new pricing service. store may be nil.
func NewPricingService(repo repositories.PricingRepository, store cache.Store, analytics *AnalyticsService) *PricingService {
	return &PricingService{repo: repo, cache: newReadCache(store), analytics: analytics}
}

// ListVisible returns the plans shown on the public pricing page
func (s *PricingService) ListVisible(ctx context.Context) ([]models.Pricing, error) {
	return readThrough(ctx, s.cache, cache.KeyPricingVisible, func(ctx context.Context) ([]models.Pricing, error) {
		plans, err := s.repo.List(ctx, true)
		if err != nil {
			return nil, fmt.Errorf("failed to list pricing plans: %w", err)
		}
		return plans, nil
	})
}

// ListAll returns every plan, hidden ones included
func (s *PricingService) ListAll(ctx context.Context) ([]models.Pricing, error) {
	plans, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	return plans, nil
}

// GetByID returns a single plan
func (s *PricingService) GetByID(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	return s.repo.GetByID(ctx, id)
}

// Create stores a new plan
func (s *PricingService) Create(ctx context.Context, in validation.CreatePricing) (*models.Pricing, error) {
	plan := &models.Pricing{
		ID:          uuid.New(),
		Name:        in.Name,
		PriceRange:  in.PriceRange,
		Description: in.Description,
		Features:    in.Features,
		IsVisible:   true,
	}
	if plan.Features == nil {
		plan.Features = []string{}
	}
	if in.IsVisible != nil {
		plan.IsVisible = *in.IsVisible
	}
	if in.DisplayOrder != nil {
		plan.DisplayOrder = *in.DisplayOrder
	}

	if err := s.repo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create pricing plan: %w", err)
	}

	s.changed(ctx, "created", plan.ID)
	return plan, nil
}

// Update applies a partial edit
func (s *PricingService) Update(ctx context.Context, id uuid.UUID, in validation.UpdatePricing) (*models.Pricing, error) {
	plan, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	in.Apply(plan)
	if err := s.repo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update pricing plan: %w", err)
	}

	s.changed(ctx, "updated", plan.ID)
	return plan, nil
}

// ToggleVisibility flips isVisible and leaves every other field untouched
func (s *PricingService) ToggleVisibility(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	plan, err := s.repo.ToggleVisibility(ctx, id)
	if err != nil {
		return nil, err
	}

	s.changed(ctx, "toggled", plan.ID)
	return plan, nil
}

// Delete removes a plan
func (s *PricingService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.changed(ctx, "deleted", id)
	return nil
}

func (s *PricingService) changed(ctx context.Context, action string, id uuid.UUID) {
	s.cache.invalidate(ctx, cache.KeyPricingVisible)
	s.analytics.TrackContentChanged(ctx, "pricing", action, id.String())
}
