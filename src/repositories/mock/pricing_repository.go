package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

// PricingRepository is a mock implementation of repositories.PricingRepository
type PricingRepository struct {
	ListFunc             func(ctx context.Context, visibleOnly bool) ([]models.Pricing, error)
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*models.Pricing, error)
	CreateFunc           func(ctx context.Context, plan *models.Pricing) error
	UpdateFunc           func(ctx context.Context, plan *models.Pricing) error
	ToggleVisibilityFunc func(ctx context.Context, id uuid.UUID) (*models.Pricing, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error

	calls

	mu    sync.RWMutex
	plans map[uuid.UUID]models.Pricing
}

// NewPricingRepository creates a new mock pricing repository
func NewPricingRepository() *PricingRepository {
	return &PricingRepository{
		calls: newCalls(),
		plans: make(map[uuid.UUID]models.Pricing),
	}
}

func (m *PricingRepository) List(ctx context.Context, visibleOnly bool) ([]models.Pricing, error) {
	m.record("List", visibleOnly)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, visibleOnly)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	plans := []models.Pricing{}
	for _, p := range m.plans {
		if !visibleOnly || p.IsVisible {
			plans = append(plans, p)
		}
	}
	sort.SliceStable(plans, func(i, j int) bool {
		if plans[i].DisplayOrder != plans[j].DisplayOrder {
			return plans[i].DisplayOrder < plans[j].DisplayOrder
		}
		return plans[i].CreatedAt.Before(plans[j].CreatedAt)
	})
	return plans, nil
}

func (m *PricingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	m.record("GetByID", id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.plans[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

func (m *PricingRepository) Create(ctx context.Context, plan *models.Pricing) error {
	m.record("Create", plan)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, plan)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	plan.CreatedAt, plan.UpdatedAt = now, now
	m.plans[plan.ID] = *plan
	return nil
}

func (m *PricingRepository) Update(ctx context.Context, plan *models.Pricing) error {
	m.record("Update", plan)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, plan)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[plan.ID]; !ok {
		return apperrors.ErrNotFound
	}
	plan.UpdatedAt = time.Now()
	m.plans[plan.ID] = *plan
	return nil
}

func (m *PricingRepository) ToggleVisibility(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	m.record("ToggleVisibility", id)
	if m.ToggleVisibilityFunc != nil {
		return m.ToggleVisibilityFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.plans[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	p.IsVisible = !p.IsVisible
	p.UpdatedAt = time.Now()
	m.plans[id] = p
	return &p, nil
}

func (m *PricingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.record("Delete", id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.plans[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.plans, id)
	return nil
}

var _ repositories.PricingRepository = (*PricingRepository)(nil)
