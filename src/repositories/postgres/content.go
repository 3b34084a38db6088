package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

const contentColumns = `id, key, value, description, version, created_at, updated_at`

// ContentRepository stores editable site copy keyed by slot name
type ContentRepository struct {
	pool *pgxpool.Pool
}

// NewContentRepository creates a new content repository
func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func scanContent(row pgx.Row) (*models.Content, error) {
	c := &models.Content{}
	var value []byte
	var description *string
	if err := row.Scan(&c.ID, &c.Key, &value, &description, &c.Version, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, translate(err)
	}
	c.Value = json.RawMessage(value)
	c.Description = derefString(description)
	return c, nil
}

func (r *ContentRepository) List(ctx context.Context) ([]models.Content, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+contentColumns+` FROM contents ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	defer rows.Close()

	var contents []models.Content
	for rows.Next() {
		c, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content: %w", err)
		}
		contents = append(contents, *c)
	}
	return contents, rows.Err()
}

func (r *ContentRepository) GetByKey(ctx context.Context, key string) (*models.Content, error) {
	return scanContent(r.pool.QueryRow(ctx, `SELECT `+contentColumns+` FROM contents WHERE key = $1`, key))
}

// Upsert resolves the version inside the statement so concurrent writers
// each bump it once. jsonb comparison ignores formatting and key order.
func (r *ContentRepository) Upsert(ctx context.Context, content *models.Content, keepDescription bool) (bool, error) {
	query := `
		INSERT INTO contents (id, key, value, description, version, created_at, updated_at)
		VALUES ($1, $2, $3::jsonb, $4, 1, NOW(), NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			description = CASE WHEN $5::boolean THEN contents.description ELSE EXCLUDED.description END,
			version = contents.version + CASE WHEN contents.value IS DISTINCT FROM EXCLUDED.value THEN 1 ELSE 0 END,
			updated_at = NOW()
		RETURNING id, description, version, created_at, updated_at, (xmax = 0) AS inserted
	`
	var description *string
	var created bool
	err := r.pool.QueryRow(ctx, query,
		content.ID, content.Key, string(content.Value), nullString(content.Description), keepDescription,
	).Scan(&content.ID, &description, &content.Version, &content.CreatedAt, &content.UpdatedAt, &created)
	if err != nil {
		return false, fmt.Errorf("failed to upsert content: %w", translate(err))
	}
	content.Description = derefString(description)
	return created, nil
}

func (r *ContentRepository) Delete(ctx context.Context, key string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contents WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to delete content: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

var _ repositories.ContentRepository = (*ContentRepository)(nil)
