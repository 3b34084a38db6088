package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of an admin account
type Role string

const (
	// RoleAdmin manages inquiries, content and pricing
	RoleAdmin Role = "admin"
	// RoleSuperAdmin has every admin permission
	RoleSuperAdmin Role = "super-admin"
)

// Valid reports whether r is a known role
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Admin represents a staff account
type Admin struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never expose
	Role         Role       `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLogin    *time.Time `json:"lastLogin"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
