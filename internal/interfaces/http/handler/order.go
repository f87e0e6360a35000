package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	tradeapp "github.com/shopworks/backend/internal/application/trade"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	BaseHandler
	service *tradeapp.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(service *tradeapp.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// Create handles POST /trade/orders
func (h *OrderHandler) Create(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	var req tradeapp.CreateOrderRequest
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

// GetByID handles GET /trade/orders/:id
func (h *OrderHandler) GetByID(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), shopID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List handles GET /trade/orders
func (h *OrderHandler) List(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	filter := tradeapp.OrderListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Status:   c.Query("status"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid client_id")
			return
		}
		filter.ClientID = &clientID
	}
	if raw := c.Query("assignee_id"); raw != "" {
		assigneeID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid assignee_id")
			return
		}
		filter.AssigneeID = &assigneeID
	}

	orders, total, err := h.service.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// UpdateStatus handles PUT /trade/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), shopID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// UpdatePayment handles PUT /trade/orders/:id/payment
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.UpdatePayment(c.Request.Context(), shopID, orderID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete handles DELETE /trade/orders/:id
func (h *OrderHandler) Delete(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	resp, err := h.service.Delete(c.Request.Context(), shopID, orderID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// queryInt parses an integer query parameter with a default
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
