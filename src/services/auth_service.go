package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/logging"
	"github.com/khabaroff/sitecraft-api/src/models"
	"golang.org/x/crypto/bcrypt"
)

// LoginResult is returned by a successful login
type LoginResult struct {
	Admin *models.Admin `json:"admin"`
	Token string        `json:"token"`
}

// AuthService authenticates admins and checks their roles
type AuthService struct {
	admins    *AdminService
	tokens    *TokenManager
	analytics *AnalyticsService
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(admins *AdminService, tokens *TokenManager, analytics *AnalyticsService) *AuthService {
	return &AuthService{
		admins:    admins,
		tokens:    tokens,
		analytics: analytics,
		now:       time.Now,
	}
}

// Login verifies credentials and issues a session token. Unknown email,
// deactivated account and wrong password all fail with the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	admin, err := s.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if !admin.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := s.now()
	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		logger := logging.NewLogger("auth_service")
		logger.Error().Err(err).Str("admin_id", admin.ID.String()).Msg("Failed to update last_login")
	} else {
		admin.LastLogin = &now
	}

	token, err := s.tokens.Issue(admin)
	if err != nil {
		return nil, err
	}

	s.analytics.TrackAdminLogin(ctx, admin)
	return &LoginResult{Admin: admin, Token: token}, nil
}

// VerifyToken resolves a bearer token to an active admin
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.Admin, error) {
	if token == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated.Wrap(err)
	}
	id, err := claims.AdminID()
	if err != nil {
		return nil, apperrors.ErrUnauthenticated.Wrap(err)
	}

	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}
	if !admin.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}
	return admin, nil
}

// Authorize fails with Forbidden unless admin holds one of roles
func (s *AuthService) Authorize(admin *models.Admin, roles ...models.Role) error {
	if admin == nil {
		return apperrors.ErrUnauthenticated
	}
	if len(roles) == 0 || slices.Contains(roles, admin.Role) {
		return nil
	}
	return apperrors.ErrForbidden.WithMessage(
		fmt.Sprintf("Role '%s' is not authorized to access this route", admin.Role))
}
