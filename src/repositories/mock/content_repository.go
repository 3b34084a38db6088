package mock

import (
	"context"
	"encoding/json"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

// ContentRepository is a mock implementation of repositories.ContentRepository
type ContentRepository struct {
	ListFunc     func(ctx context.Context) ([]models.Content, error)
	GetByKeyFunc func(ctx context.Context, key string) (*models.Content, error)
	UpsertFunc   func(ctx context.Context, content *models.Content, keepDescription bool) (bool, error)
	DeleteFunc   func(ctx context.Context, key string) error

	calls

	mu       sync.RWMutex
	contents map[string]models.Content
}

// NewContentRepository creates a new mock content repository
func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		calls:    newCalls(),
		contents: make(map[string]models.Content),
	}
}

func (m *ContentRepository) List(ctx context.Context) ([]models.Content, error) {
	m.record("List")
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	contents := make([]models.Content, 0, len(m.contents))
	for _, c := range m.contents {
		contents = append(contents, c)
	}
	sort.Slice(contents, func(i, j int) bool { return contents[i].Key < contents[j].Key })
	return contents, nil
}

func (m *ContentRepository) GetByKey(ctx context.Context, key string) (*models.Content, error) {
	m.record("GetByKey", key)
	if m.GetByKeyFunc != nil {
		return m.GetByKeyFunc(ctx, key)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	c, ok := m.contents[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (m *ContentRepository) Upsert(ctx context.Context, content *models.Content, keepDescription bool) (bool, error) {
	m.record("Upsert", content, keepDescription)
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, content, keepDescription)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	existing, ok := m.contents[content.Key]
	if !ok {
		content.Version = 1
		content.CreatedAt = now
		content.UpdatedAt = now
		m.contents[content.Key] = *content
		return true, nil
	}

	content.ID = existing.ID
	content.CreatedAt = existing.CreatedAt
	content.UpdatedAt = now
	content.Version = existing.Version
	if !sameJSON(existing.Value, content.Value) {
		content.Version++
	}
	if keepDescription {
		content.Description = existing.Description
	}
	m.contents[content.Key] = *content
	return false, nil
}

func (m *ContentRepository) Delete(ctx context.Context, key string) error {
	m.record("Delete", key)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contents[key]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.contents, key)
	return nil
}

var _ repositories.ContentRepository = (*ContentRepository)(nil)

// sameJSON compares two JSON documents by value, the way jsonb equality does
func sameJSON(a, b json.RawMessage) bool {
	var va, vb any
	if err := json.Unmarshal(a, &va); err != nil {
		return false
	}
	if err := json.Unmarshal(b, &vb); err != nil {
		return false
	}
	return reflect.DeepEqual(va, vb)
}
