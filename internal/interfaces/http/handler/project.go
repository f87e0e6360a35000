package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/shopworks/backend/internal/application/trade"
)

// ProjectHandler handles editing project endpoints
type ProjectHandler struct {
	BaseHandler
	service *tradeapp.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service *tradeapp.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// Create handles POST /trade/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	var req tradeapp.CreateProjectRequest
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

// GetByID handles GET /trade/projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	projectID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), shopID, projectID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /trade/projects
func (h *ProjectHandler) List(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	filter := tradeapp.ProjectListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Status:   c.Query("status"),
	}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid client_id")
			return
		}
		filter.ClientID = &clientID
	}
	if raw := c.Query("editor_id"); raw != "" {
		editorID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid editor_id")
			return
		}
		filter.EditorID = &editorID
	}

	projects, total, err := h.service.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, projects, total, filter.Page, filter.PageSize)
}

// Update handles PUT /trade/projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	projectID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req tradeapp.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), shopID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdatePayment handles PUT /trade/projects/:id/payment
func (h *ProjectHandler) UpdatePayment(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	projectID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req tradeapp.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.UpdatePayment(c.Request.Context(), shopID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdateStatus handles PUT /trade/projects/:id/status
func (h *ProjectHandler) UpdateStatus(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	projectID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	var req tradeapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), shopID, projectID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /trade/projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	projectID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid project ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), shopID, projectID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"id": projectID})
}
