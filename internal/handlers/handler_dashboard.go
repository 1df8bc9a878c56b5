package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/roadstead/vehicle_rental_app/internal/core/ports/services"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardService
}

// registerDashboardRoutes registers the dashboard rollup route.
func registerDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardService) {
	h := &dashboardHandler{dashboardService: dashboardService}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Get the dashboard summary
// @Description Current month invoiced and transaction totals, outstanding balance, top customers and recent activity
// @Tags dashboard
// @Produce  json
// @Success 200 {object} domain.DashboardSummary
// @Failure 500 {object} map[string]string "Failed to build dashboard"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}
