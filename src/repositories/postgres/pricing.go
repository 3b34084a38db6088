package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

const pricingColumns = `id, name, price_range, description, features, is_visible, display_order, created_at, updated_at`

// PricingRepository stores pricing plans
type PricingRepository struct {
	pool *pgxpool.Pool
}

// NewPricingRepository creates a new pricing repository
func NewPricingRepository(pool *pgxpool.Pool) *PricingRepository {
	return &PricingRepository{pool: pool}
}

func scanPricing(row pgx.Row) (*models.Pricing, error) {
	p := &models.Pricing{}
	err := row.Scan(&p.ID, &p.Name, &p.PriceRange, &p.Description, &p.Features, &p.IsVisible, &p.DisplayOrder, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	if p.Features == nil {
		p.Features = []string{}
	}
	return p, nil
}

func features(p *models.Pricing) []string {
	if p.Features == nil {
		return []string{}
	}
	return p.Features
}

func (r *PricingRepository) List(ctx context.Context, visibleOnly bool) ([]models.Pricing, error) {
	query := `
		SELECT ` + pricingColumns + ` FROM pricing_plans
		WHERE ($1 = FALSE OR is_visible = TRUE)
		ORDER BY display_order ASC, created_at ASC, id ASC
	`
	rows, err := r.pool.Query(ctx, query, visibleOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list pricing plans: %w", err)
	}
	defer rows.Close()

	plans := []models.Pricing{}
	for rows.Next() {
		p, err := scanPricing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pricing plan: %w", err)
		}
		plans = append(plans, *p)
	}
	return plans, rows.Err()
}

func (r *PricingRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	return scanPricing(r.pool.QueryRow(ctx, `SELECT `+pricingColumns+` FROM pricing_plans WHERE id = $1`, id))
}

func (r *PricingRepository) Create(ctx context.Context, plan *models.Pricing) error {
	query := `
		INSERT INTO pricing_plans (id, name, price_range, description, features, is_visible, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		plan.ID, plan.Name, plan.PriceRange, plan.Description, features(plan), plan.IsVisible, plan.DisplayOrder,
	).Scan(&plan.CreatedAt, &plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create pricing plan: %w", translate(err))
	}
	return nil
}

func (r *PricingRepository) Update(ctx context.Context, plan *models.Pricing) error {
	query := `
		UPDATE pricing_plans SET
			name = $2, price_range = $3, description = $4, features = $5,
			is_visible = $6, display_order = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		plan.ID, plan.Name, plan.PriceRange, plan.Description, features(plan), plan.IsVisible, plan.DisplayOrder,
	).Scan(&plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update pricing plan: %w", translate(err))
	}
	return nil
}

// ToggleVisibility flips is_visible in a single statement so concurrent
// toggles cannot both read the same prior value.
func (r *PricingRepository) ToggleVisibility(ctx context.Context, id uuid.UUID) (*models.Pricing, error) {
	query := `
		UPDATE pricing_plans SET is_visible = NOT is_visible, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + pricingColumns
	return scanPricing(r.pool.QueryRow(ctx, query, id))
}

func (r *PricingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pricing_plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete pricing plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

var _ repositories.PricingRepository = (*PricingRepository)(nil)
