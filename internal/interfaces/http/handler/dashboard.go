package handler

import (
	"github.com/gin-gonic/gin"

	appdashboard "github.com/foodcourt/storefront/internal/application/dashboard"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// DashboardHandler serves the admin dashboard summary
type DashboardHandler struct {
	BaseHandler
	dashboardService *appdashboard.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *appdashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers dashboard routes
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/dashboard", h.Stats)
}

// Stats handles GET /api/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.Stats(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, dto.NewDataResponse(stats))
}
