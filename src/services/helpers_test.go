package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories/mock"
	"github.com/khabaroff/sitecraft-api/src/validation"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-key-that-is-long-enough-for-hs256"

// fakeNotifier records the inquiries it was asked to send
type fakeNotifier struct {
	mu            sync.Mutex
	notified      []string
	confirmed     []string
	notifyErr     error
	confirmations error
}

func (f *fakeNotifier) NotifyNewInquiry(_ context.Context, inquiry *models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, inquiry.Email)
	return f.notifyErr
}

func (f *fakeNotifier) SendInquiryConfirmation(_ context.Context, inquiry *models.Inquiry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed = append(f.confirmed, inquiry.Email)
	return f.confirmations
}

func (f *fakeNotifier) counts() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.notified), len(f.confirmed)
}

var errSMTPDown = errors.New("smtp down")

func newTestAdminService(t *testing.T) (*AdminService, *mock.AdminRepository) {
	t.Helper()
	repo := mock.NewAdminRepository()
	svc := NewAdminService(repo)
	svc.cost = bcrypt.MinCost
	return svc, repo
}

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, DefaultTokenTTL)
	if err != nil {
		t.Fatalf("failed to create token manager: %v", err)
	}
	return tm
}

// deactivate marks a stored admin inactive
func deactivate(t *testing.T, repo *mock.AdminRepository, admin *models.Admin) {
	t.Helper()
	inactive := *admin
	inactive.IsActive = false
	repo.Seed(inactive)
}

func createTestAdmin(t *testing.T, svc *AdminService, email, password string, role models.Role) *models.Admin {
	t.Helper()
	admin, err := svc.Create(context.Background(), validation.CreateAdmin{
		Name:     "Test Admin",
		Email:    email,
		Password: password,
		Role:     role,
	})
	if err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}
	return admin
}
