package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/shopworks/backend/internal/application/identity"
)

// UserHandler handles shop member endpoints
type UserHandler struct {
	BaseHandler
	service *identityapp.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service *identityapp.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Create handles POST /identity/users
func (h *UserHandler) Create(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	var req identityapp.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), shopID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID handles GET /identity/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	userID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), shopID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /identity/users
func (h *UserHandler) List(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	// external_uid resolution serves clients that only hold a federated
	// login identifier.
	if externalUID := c.Query("external_uid"); externalUID != "" {
		resp, err := h.service.ResolveExternalUID(c.Request.Context(), shopID, externalUID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, resp)
		return
	}

	filter := identityapp.UserListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Role:     c.Query("role"),
		Search:   c.Query("search"),
	}

	users, total, err := h.service.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, users, total, filter.Page, filter.PageSize)
}

// Update handles PUT /identity/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	userID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	var req identityapp.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), shopID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deactivate handles DELETE /identity/users/:id
func (h *UserHandler) Deactivate(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	userID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid user ID")
		return
	}

	resp, err := h.service.Deactivate(c.Request.Context(), shopID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Notifications handles GET /identity/notifications
func (h *UserHandler) Notifications(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User not resolved")
		return
	}

	filter := identityapp.NotificationListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
	}

	notifications, unread, err := h.service.Notifications(c.Request.Context(), userID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"notifications": notifications,
		"unread_count":  unread,
	})
}

// MarkNotificationRead handles PUT /identity/notifications/:id/read
func (h *UserHandler) MarkNotificationRead(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "User not resolved")
		return
	}

	notificationID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid notification ID")
		return
	}

	if err := h.service.MarkNotificationRead(c.Request.Context(), userID, notificationID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": notificationID})
}
