package journal_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideJournalRepo, provideJournalService, provideJournalController)

func provideJournalRepo(db *gorm.DB) repositories.JournalRepository {
	return repositories.NewJournalRepository(db)
}

func provideJournalService(repo repositories.JournalRepository) services.JournalService {
	return services.NewJournalService(repo)
}

func provideJournalController(
	journalService services.JournalService,
	recommender services.RecommendationService,
) *controllers.JournalController {
	return controllers.NewJournalController(journalService, recommender)
}
