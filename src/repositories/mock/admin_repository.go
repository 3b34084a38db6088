package mock

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

// AdminRepository is a mock implementation of repositories.AdminRepository
type AdminRepository struct {
	// Function stubs that can be overridden in tests
	CreateFunc          func(ctx context.Context, admin *models.Admin) error
	GetByEmailFunc      func(ctx context.Context, email string) (*models.Admin, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	UpdateLastLoginFunc func(ctx context.Context, id uuid.UUID, at time.Time) error
	CountFunc           func(ctx context.Context) (int64, error)

	// Call tracking
	calls

	mu     sync.RWMutex
	admins map[uuid.UUID]models.Admin
}

// NewAdminRepository creates a new mock admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{
		calls:  newCalls(),
		admins: make(map[uuid.UUID]models.Admin),
	}
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	m.record("Create", admin)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, admin)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, admin.Email) {
			return apperrors.DuplicateKey("email")
		}
	}
	now := time.Now()
	admin.CreatedAt, admin.UpdatedAt = now, now
	m.admins[admin.ID] = *admin
	return nil
}

func (m *AdminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	m.record("GetByEmail", email)
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.admins {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	m.record("GetByID", id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.admins[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (m *AdminRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	m.record("UpdateLastLogin", id, at)
	if m.UpdateLastLoginFunc != nil {
		return m.UpdateLastLoginFunc(ctx, id, at)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.admins[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.LastLogin = &at
	m.admins[id] = a
	return nil
}

func (m *AdminRepository) Count(ctx context.Context) (int64, error) {
	m.record("Count")
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.admins)), nil
}

// Seed stores admin as-is, bypassing the duplicate check
func (m *AdminRepository) Seed(admin models.Admin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[admin.ID] = admin
}

// Ensure AdminRepository implements the interface
var _ repositories.AdminRepository = (*AdminRepository)(nil)
