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

const inquiryColumns = `id, name, email, phone, message, source_page, status, admin_notes, created_at, updated_at`

// inquirySortColumns whitelists sortable fields; anything else sorts by created_at.
var inquirySortColumns = map[string]string{
	models.SortByCreatedAt: "created_at",
	models.SortByUpdatedAt: "updated_at",
	models.SortByName:      "name",
	models.SortByEmail:     "email",
	models.SortByStatus:    "status",
}

// InquiryRepository stores contact-form submissions
type InquiryRepository struct {
	pool *pgxpool.Pool
}

// NewInquiryRepository creates a new inquiry repository
func NewInquiryRepository(pool *pgxpool.Pool) *InquiryRepository {
	return &InquiryRepository{pool: pool}
}

func scanInquiry(row pgx.Row) (*models.Inquiry, error) {
	i := &models.Inquiry{}
	var phone, notes *string
	var source, status string
	err := row.Scan(&i.ID, &i.Name, &i.Email, &phone, &i.Message, &source, &status, &notes, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	i.Phone = derefString(phone)
	i.AdminNotes = derefString(notes)
	i.SourcePage = models.SourcePage(source)
	i.Status = models.InquiryStatus(status)
	return i, nil
}

func (r *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		INSERT INTO inquiries (id, name, email, phone, message, source_page, status, admin_notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.Email, nullString(inquiry.Phone), inquiry.Message,
		string(inquiry.SourcePage), string(inquiry.Status), nullString(inquiry.AdminNotes),
	).Scan(&inquiry.CreatedAt, &inquiry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create inquiry: %w", translate(err))
	}
	return nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	query := `SELECT ` + inquiryColumns + ` FROM inquiries WHERE id = $1`
	return scanInquiry(r.pool.QueryRow(ctx, query, id))
}

func (r *InquiryRepository) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int64, error) {
	column, ok := inquirySortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if filter.SortOrder == "asc" {
		direction = "ASC"
	}

	var total int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inquiries WHERE ($1 = '' OR status = $1)`, string(filter.Status),
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count inquiries: %w", err)
	}

	// column and direction come from the whitelist above, never from input
	query := fmt.Sprintf(`
		SELECT %s FROM inquiries
		WHERE ($1 = '' OR status = $1)
		ORDER BY %s %s, id %s
		LIMIT $2 OFFSET $3
	`, inquiryColumns, column, direction, direction)

	rows, err := r.pool.Query(ctx, query, string(filter.Status), filter.Limit, filter.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	inquiries := make([]models.Inquiry, 0, filter.Limit)
	for rows.Next() {
		i, err := scanInquiry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, *i)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate inquiries: %w", err)
	}

	return inquiries, total, nil
}

func (r *InquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	query := `
		UPDATE inquiries SET status = $2, admin_notes = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, inquiry.ID, string(inquiry.Status), nullString(inquiry.AdminNotes)).
		Scan(&inquiry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to update inquiry: %w", translate(err))
	}
	return nil
}

func (r *InquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inquiries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inquiry: %w", translate(err))
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *InquiryRepository) CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error) {
	rows, err := r.pool.Query(ctx, `SELECT status, COUNT(*) FROM inquiries GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count inquiries by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.InquiryStatus]int64)
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts[models.InquiryStatus(status)] = count
	}
	return counts, rows.Err()
}

var _ repositories.InquiryRepository = (*InquiryRepository)(nil)
