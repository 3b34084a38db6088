package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/logging"
	"github.com/khabaroff/sitecraft-api/src/models"
	"github.com/khabaroff/sitecraft-api/src/repositories"
	"github.com/khabaroff/sitecraft-api/src/validation"
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the bcrypt work factor for admin passwords
const PasswordCost = 12

// AdminService handles admin account operations
type AdminService struct {
	repo repositories.AdminRepository
	cost int
}

// NewAdminService creates a new admin service
func NewAdminService(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo, cost: PasswordCost}
}

// FindByEmail looks an admin up by case-folded email
func (as *AdminService) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return as.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

// FindByID looks an admin up by id
func (as *AdminService) FindByID(ctx context.Context, id uuid.UUID) (*models.Admin, error) {
	return as.repo.GetByID(ctx, id)
}

// Create validates the input, hashes the password and stores a new admin.
// A taken email fails with DuplicateKey.
func (as *AdminService) Create(ctx context.Context, in validation.CreateAdmin) (*models.Admin, error) {
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), as.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		ID:           uuid.New(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     true,
	}
	if err := as.repo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}

// HasAdmins checks if any admin accounts exist
func (as *AdminService) HasAdmins(ctx context.Context) (bool, error) {
	count, err := as.repo.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check admins: %w", err)
	}
	return count > 0, nil
}

// UpdateLastLogin records a successful login
func (as *AdminService) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return as.repo.UpdateLastLogin(ctx, id, at)
}

// EnsureSeedAdmin creates a super-admin when the admins table is empty.
// It reports whether an account was created.
func (as *AdminService) EnsureSeedAdmin(ctx context.Context, name, email, password string) (bool, error) {
	hasAdmins, err := as.HasAdmins(ctx)
	if err != nil {
		return false, err
	}
	if hasAdmins {
		return false, nil
	}

	admin, err := as.Create(ctx, validation.CreateAdmin{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     models.RoleSuperAdmin,
	})
	if err != nil {
		// another instance won the race
		if errors.Is(err, apperrors.ErrDuplicateKey) {
			return false, nil
		}
		return false, err
	}

	logger := logging.NewLogger("admin_service")
	logger.Info().Str("admin_id", admin.ID.String()).Str("email", admin.Email).Msg("Seeded super-admin account")
	return true, nil
}
