package controllers

import (
	"github.com/gin-gonic/gin"

	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetOverview godoc
// @Summary Platform totals for the admin dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (d *DashboardController) GetOverview(c *gin.Context) {
	overview, err := d.dashboardService.GetOverview(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, overview, "Dashboard fetched")
}
