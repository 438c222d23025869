package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideDashboardRepo, provideDashboardService, provideDashboardController)

func provideDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

func provideDashboardService(repo repositories.DashboardRepository) services.DashboardServiceInterface {
	return services.NewDashboardService(repo)
}

func provideDashboardController(dashboardService services.DashboardServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
