package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	payrollapp "github.com/shopworks/backend/internal/application/payroll"
)

// SalaryHandler handles salary ledger endpoints
type SalaryHandler struct {
	BaseHandler
	service *payrollapp.SalaryService
}

// NewSalaryHandler creates a new SalaryHandler
func NewSalaryHandler(service *payrollapp.SalaryService) *SalaryHandler {
	return &SalaryHandler{service: service}
}

// List handles GET /payroll/salaries
func (h *SalaryHandler) List(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	filter := payrollapp.SalaryListFilter{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Unpaid:   c.Query("unpaid") == "true",
	}
	if raw := c.Query("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid user_id")
			return
		}
		filter.UserID = &userID
	}

	entries, total, err := h.service.List(c.Request.Context(), shopID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// CreateBonus handles POST /payroll/salaries
func (h *SalaryHandler) CreateBonus(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	var req payrollapp.CreateBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	resp, err := h.service.CreateBonus(c.Request.Context(), shopID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Pay handles PUT /payroll/salaries/:id/pay
func (h *SalaryHandler) Pay(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	salaryID, err := parseID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid salary ID")
		return
	}

	resp, err := h.service.Pay(c.Request.Context(), shopID, salaryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// EmployeeSummary handles GET /payroll/employees/:id/summary
func (h *SalaryHandler) EmployeeSummary(c *gin.Context) {
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

	resp, err := h.service.EmployeeSummary(c.Request.Context(), shopID, userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}
