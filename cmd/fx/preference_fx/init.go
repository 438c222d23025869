package preference_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo, providePreferenceService, providePreferenceController)

func providePreferenceRepo(db *gorm.DB) repositories.PreferenceRepository {
	return repositories.NewPreferenceRepository(db)
}

func providePreferenceService(repo repositories.PreferenceRepository) services.PreferenceService {
	return services.NewPreferenceService(repo)
}

func providePreferenceController(preferenceService services.PreferenceService) *controllers.PreferenceController {
	return controllers.NewPreferenceController(preferenceService)
}
