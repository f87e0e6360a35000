package handler

import (
	"github.com/gin-gonic/gin"

	reportapp "github.com/shopworks/backend/internal/application/report"
)

// DashboardHandler handles dashboard read endpoints
type DashboardHandler struct {
	BaseHandler
	service *reportapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(service *reportapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// viewer builds the dashboard viewer from the resolved identity. Owners
// get the shop-wide view; any other role sees only its own records.
func (h *DashboardHandler) viewer(c *gin.Context) (reportapp.Viewer, bool) {
	userID, err := getUserID(c)
	if err != nil {
		// No user resolved: treat as the owner console, which has no
		// per-user filtering to apply.
		return reportapp.Viewer{Role: getRole(c)}, true
	}
	return reportapp.Viewer{UserID: userID, Role: getRole(c)}, true
}

// Stats handles GET /report/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	viewer, _ := h.viewer(c)
	resp, err := h.service.Stats(c.Request.Context(), shopID, viewer)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Alerts handles GET /report/dashboard/alerts
func (h *DashboardHandler) Alerts(c *gin.Context) {
	shopID, err := getShopID(c)
	if err != nil {
		h.Unauthorized(c, "Shop not resolved")
		return
	}

	viewer, _ := h.viewer(c)
	alerts, err := h.service.Alerts(c.Request.Context(), shopID, viewer)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, reportapp.AlertsResponse{Alerts: alerts})
}
