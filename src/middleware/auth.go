package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
)

// AdminKey is the context key for the authenticated admin
const AdminKey = "admin"

// Authenticator resolves bearer tokens and checks roles. services.AuthService implements it.
type Authenticator interface {
	VerifyToken(ctx context.Context, token string) (*models.Admin, error)
	Authorize(admin *models.Admin, roles ...models.Role) error
}

// bearerToken extracts the token from "Authorization: Bearer <token>"
func bearerToken(c *gin.Context) string {
	parts := strings.Fields(c.GetHeader("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// RequireAdmin rejects requests without a valid token for an active admin
func RequireAdmin(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortWithError(c, apperrors.ErrUnauthenticated)
			return
		}

		admin, err := auth.VerifyToken(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.Set(AdminKey, admin)
		c.Next()
	}
}

// RequireRole rejects authenticated admins whose role is not listed.
// Must run after RequireAdmin.
func RequireRole(auth Authenticator, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := auth.Authorize(CurrentAdmin(c), roles...); err != nil {
			abortWithError(c, err)
			return
		}
		c.Next()
	}
}

// CurrentAdmin returns the admin stored by RequireAdmin, or nil
func CurrentAdmin(c *gin.Context) *models.Admin {
	if v, ok := c.Get(AdminKey); ok {
		if admin, ok := v.(*models.Admin); ok {
			return admin
		}
	}
	return nil
}

func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
