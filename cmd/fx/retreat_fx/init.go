package retreat_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

var Module = fx.Provide(
	provideRetreatRepo,
	provideRetreatEmbeddingRepo,
	provideRetreatService,
	provideRetreatController)

func provideRetreatRepo(db *gorm.DB) repositories.RetreatRepository {
	return repositories.NewRetreatRepository(db)
}

func provideRetreatEmbeddingRepo(db *gorm.DB) repositories.IRetreatEmbeddingRepository {
	return repositories.NewRetreatEmbeddingRepository(db)
}

func provideRetreatService(
	retreatRepo repositories.RetreatRepository,
	embeddingRepo repositories.IRetreatEmbeddingRepository,
	ai utils.AIClientInterface,
) services.RetreatServiceInterface {
	return services.NewRetreatService(retreatRepo, embeddingRepo, ai)
}

func provideRetreatController(retreatService services.RetreatServiceInterface) *controllers.RetreatController {
	return controllers.NewRetreatController(retreatService)
}
