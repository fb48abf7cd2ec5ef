package searchfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibeplan/internal/api/controllers"
	"vibeplan/internal/repositories"
	"vibeplan/internal/services"
	"vibeplan/pkg/utils"
)

var Module = fx.Provide(
	provideEmbeddingRepo, provideSearchService, provideSearchController)

func provideEmbeddingRepo(db *gorm.DB) repositories.IPlaceEmbeddingRepository {
	return repositories.NewPlaceEmbeddingRepository(db)
}

func provideSearchService(
	aiClient utils.AIClientInterface,
	embeddingRepo repositories.IPlaceEmbeddingRepository,
) services.SearchServiceInterface {
	return services.NewSearchService(aiClient, embeddingRepo)
}

func provideSearchController(searchService services.SearchServiceInterface) *controllers.SearchController {
	return controllers.NewSearchController(searchService)
}
