package location_fx

import (
	"go.uber.org/fx"

	"retreatly/internal/api/controllers"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideLocationService, provideLocationController)

func provideLocationService() services.LocationService {
	return services.NewMapboxLocationClient()
}

func provideLocationController(locationService services.LocationService) *controllers.LocationController {
	return controllers.NewLocationController(locationService)
}
