package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/middleware"
	"github.com/khabaroff/sitecraft-api/src/response"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// AuthHandler handles staff authentication requests
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// HandleLogin handles POST /auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req validation.Login
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.OK(c, "Login successful", gin.H{
		"admin": result.Admin,
		"token": result.Token,
	})
}

// HandleMe handles GET /auth/me
func (h *AuthHandler) HandleMe(c *gin.Context) {
	response.OK(c, "Admin retrieved successfully", middleware.CurrentAdmin(c))
}

// HandleLogout handles POST /auth/logout. Tokens are stateless; the client discards its copy.
func (h *AuthHandler) HandleLogout(c *gin.Context) {
	response.OK(c, "Logout successful", nil)
}
