package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/cache"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// ContentService manages editable site copy
type ContentService struct {
	repo      repositories.ContentRepository
	cache     *readCache
	analytics *AnalyticsService
}

// NewContentService creates a new content service. store may be nil.
func NewContentService(repo repositories.ContentRepository, store cache.Store, analytics *AnalyticsService) *ContentService {
	return &ContentService{repo: repo, cache: newReadCache(store), analytics: analytics}
}

// GetAll returns every content value keyed by slot name
func (s *ContentService) GetAll(ctx context.Context) (map[string]json.RawMessage, error) {
	return readThrough(ctx, s.cache, cache.KeyContentAll, func(ctx context.Context) (map[string]json.RawMessage, error) {
		contents, err := s.repo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load content: %w", err)
		}
		values := make(map[string]json.RawMessage, len(contents))
		for _, c := range contents {
			values[c.Key] = c.Value
		}
		return values, nil
	})
}

// GetByKey returns a single content record
func (s *ContentService) GetByKey(ctx context.Context, rawKey string) (*models.Content, error) {
	key, err := validation.ContentKey(rawKey)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByKey(ctx, key)
}

// Update creates or overwrites the content at key. Version starts at 1 and
// increments only when the stored value actually changes.
func (s *ContentService) Update(ctx context.Context, rawKey string, in validation.UpdateContent) (*models.Content, error) {
	key, err := validation.ContentKey(rawKey)
	if err != nil {
		return nil, err
	}

	content := &models.Content{ID: uuid.New(), Key: key, Value: in.Value}
	if in.Description != nil {
		content.Description = *in.Description
	}

	created, err := s.repo.Upsert(ctx, content, in.Description == nil)
	if err != nil {
		return nil, fmt.Errorf("failed to save content: %w", err)
	}

	action := "updated"
	if created {
		action = "created"
	}
	s.cache.invalidate(ctx, cache.KeyContentAll)
	s.analytics.TrackContentChanged(ctx, "content", action, key)
	return content, nil
}

// Delete removes the content at key
func (s *ContentService) Delete(ctx context.Context, rawKey string) error {
	key, err := validation.ContentKey(rawKey)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, key); err != nil {
		return err
	}

	s.cache.invalidate(ctx, cache.KeyContentAll)
	s.analytics.TrackContentChanged(ctx, "content", "deleted", key)
	return nil
}
