package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/shopworks/backend/internal/application/partner"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	BaseHandler
	service *partnerapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(service *partnerapp.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Create handles POST /partner/clients
func (h *ClientHandler) Create(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	var req partnerapp.CreateClientRequest
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

// GetByID handles GET /partner/clients/:id
func (h *ClientHandler) GetByID(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), shopID, clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /partner/clients
func (h *ClientHandler) List(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	filter := partnerapp.ClientListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Search:   c.Query("search"),
		Status:   c.Query("payment_status"),
	}

	clients, total, err := h.service.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, clients, total, filter.Page, filter.PageSize)
}

// Update handles PUT /partner/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req partnerapp.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), shopID, clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /partner/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), shopID, clientID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": clientID})
}

// RecordPayment handles PUT /partner/clients/:id/payment
func (h *ClientHandler) RecordPayment(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	var req partnerapp.RecordClientPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.RecordPayment(c.Request.Context(), shopID, clientID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Recalculate handles POST /partner/clients/:id/recalculate
func (h *ClientHandler) Recalculate(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	resp, err := h.service.Recalculate(c.Request.Context(), shopID, clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// WorkHistory handles GET /partner/clients/:id/work-history
func (h *ClientHandler) WorkHistory(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	resp, err := h.service.WorkHistory(c.Request.Context(), shopID, clientID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateWorkPayment handles PUT /partner/clients/:id/work/:work_id/payment
func (h *ClientHandler) UpdateWorkPayment(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	clientID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}

	workID, err := parseID(c, "work_id")
	if err != nil {
		h.BadRequest(c, "Invalid work item ID")
		return
	}

	var req partnerapp.UpdateWorkPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateWorkPayment(c.Request.Context(), shopID, clientID, workID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
