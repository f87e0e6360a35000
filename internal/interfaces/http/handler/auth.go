package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/shopworks/backend/internal/application/identity"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	service *identityapp.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service *identityapp.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /identity/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req identityapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
