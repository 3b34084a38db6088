package mock

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
)

// InquiryRepository is a mock implementation of repositories.InquiryRepository
type InquiryRepository struct {
	CreateFunc        func(ctx context.Context, inquiry *models.Inquiry) error
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*models.Inquiry, error)
	ListFunc          func(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int64, error)
	UpdateFunc        func(ctx context.Context, inquiry *models.Inquiry) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	CountByStatusFunc func(ctx context.Context) (map[models.InquiryStatus]int64, error)

	calls

	mu        sync.RWMutex
	inquiries map[uuid.UUID]models.Inquiry
}

// NewInquiryRepository creates a new mock inquiry repository
func NewInquiryRepository() *InquiryRepository {
	return &InquiryRepository{
		calls:     newCalls(),
		inquiries: make(map[uuid.UUID]models.Inquiry),
	}
}

func (m *InquiryRepository) Create(ctx context.Context, inquiry *models.Inquiry) error {
	m.record("Create", inquiry)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, inquiry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	inquiry.CreatedAt, inquiry.UpdatedAt = now, now
	m.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (m *InquiryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Inquiry, error) {
	m.record("GetByID", id)
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	inq, ok := m.inquiries[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &inq, nil
}

func (m *InquiryRepository) List(ctx context.Context, filter models.InquiryFilter) ([]models.Inquiry, int64, error) {
	m.record("List", filter)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}

	m.mu.RLock()
	var matched []models.Inquiry
	for _, inq := range m.inquiries {
		if filter.Status == "" || inq.Status == filter.Status {
			matched = append(matched, inq)
		}
	}
	m.mu.RUnlock()

	desc := filter.SortOrder != "asc"
	sort.SliceStable(matched, func(i, j int) bool {
		c := compareInquiries(matched[i], matched[j], filter.SortBy)
		if c == 0 {
			c = strings.Compare(matched[i].ID.String(), matched[j].ID.String())
		}
		if desc {
			return c > 0
		}
		return c < 0
	})

	total := int64(len(matched))
	start := filter.Offset()
	if start >= len(matched) {
		return []models.Inquiry{}, total, nil
	}
	end := start + filter.Limit
	if end > len(matched) || filter.Limit <= 0 {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func compareInquiries(a, b models.Inquiry, sortBy string) int {
	switch sortBy {
	case models.SortByName:
		return strings.Compare(a.Name, b.Name)
	case models.SortByEmail:
		return strings.Compare(a.Email, b.Email)
	case models.SortByStatus:
		return strings.Compare(string(a.Status), string(b.Status))
	case models.SortByUpdatedAt:
		return a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		return a.CreatedAt.Compare(b.CreatedAt)
	}
}

func (m *InquiryRepository) Update(ctx context.Context, inquiry *models.Inquiry) error {
	m.record("Update", inquiry)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, inquiry)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.inquiries[inquiry.ID]; !ok {
		return apperrors.ErrNotFound
	}
	inquiry.UpdatedAt = time.Now()
	m.inquiries[inquiry.ID] = *inquiry
	return nil
}

func (m *InquiryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	m.record("Delete", id)
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.inquiries[id]; !ok {
		return apperrors.ErrNotFound
	}
	delete(m.inquiries, id)
	return nil
}

func (m *InquiryRepository) CountByStatus(ctx context.Context) (map[models.InquiryStatus]int64, error) {
	m.record("CountByStatus")
	if m.CountByStatusFunc != nil {
		return m.CountByStatusFunc(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	counts := make(map[models.InquiryStatus]int64)
	for _, inq := range m.inquiries {
		counts[inq.Status]++
	}
	return counts, nil
}

var _ repositories.InquiryRepository = (*InquiryRepository)(nil)
