package tagsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibeplan/internal/api/controllers"
	"vibeplan/internal/repositories"
	"vibeplan/internal/services"
)

var Module = fx.Provide(
	provideTagRepo, provideTagService, provideTagController)

func provideTagRepo(db *gorm.DB) repositories.TagRepositoryInterface {
	return repositories.NewTagRepository(db)
}

func provideTagService(tagRepo repositories.TagRepositoryInterface) services.TagServiceInterface {
	return services.NewTagService(tagRepo)
}

func provideTagController(tagService services.TagServiceInterface) *controllers.TagController {
	return controllers.NewTagController(tagService)
}
