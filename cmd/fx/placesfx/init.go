package placesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibeplan/internal/api/controllers"
	"vibeplan/internal/repositories"
	"vibeplan/internal/services"
)

var Module = fx.Provide(
	providePlaceRepo, providePlaceService, providePlacesController)

func providePlaceRepo(db *gorm.DB) repositories.PlaceRepository {
	return repositories.NewPlaceRepository(db)
}

func providePlaceService(placeRepo repositories.PlaceRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(placeRepo)
}

func providePlacesController(placeService services.PlaceServiceInterface) *controllers.PlacesController {
	return controllers.NewPlacesController(placeService)
}
