package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/models"
)

// Implementations return apperrors.ErrNotFound when a lookup by identity
// matches nothing, and apperrors.DuplicateKey on uniqueness conflicts.

// AdminRepository defines the interface for admin data access
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
	Count(ctx context.Context) (int64, error)
}

// InquiryRepository defines the interface for inquiry data access
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int64, error)
	Update(ctx context.Context, inquiry *models.Inquiry) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error)
}

// ContentRepository defines the interface for content data access
type ContentRepository interface {
	List(ctx context.Context) ([]models.Content, error)
	GetByKey(ctx context.Context, key string) (*models.Content, error)
	// Upsert inserts content.Key at version 1, or overwrites it and bumps
	// the version when the value changes. keepDescription leaves the stored
	// description alone. Stored fields are written back into content.
	Upsert(ctx context.Context, content *models.Content, keepDescription bool) (created bool, err error)
	Delete(ctx context.Context, key string) error
}

// PricingRepository defines the interface for pricing plan data access
type PricingRepository interface {
	// List returns plans ordered by display order; visibleOnly hides isVisible=false.
	List(ctx context.Context, visibleOnly bool) ([]models.Pricing, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Pricing, error)
	Create(ctx context.Context, plan *models.Pricing) error
	Update(ctx context.Context, plan *models.Pricing) error
	ToggleVisibility(ctx context.Context, id uuid.UUID) (*models.Pricing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
