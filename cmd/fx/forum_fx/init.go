package forum_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"retreatly/internal/api/controllers"
	"retreatly/internal/repositories"
	"retreatly/internal/services"
)

var Module = fx.Provide(
	provideForumRepo, provideForumService, provideForumController)

func provideForumRepo(db *gorm.DB) repositories.ForumRepository {
	return repositories.NewForumRepository(db)
}

func provideForumService(repo repositories.ForumRepository) services.ForumServiceInterface {
	return services.NewForumService(repo)
}

func provideForumController(forumService services.ForumServiceInterface) *controllers.ForumController {
	return controllers.NewForumController(forumService)
}
