package services

import (
	"context"
	"log"

	"vibeplan/internal/models/db_models"
	"vibeplan/internal/models/response_models"
	"vibeplan/internal/repositories"
	"vibeplan/pkg/utils"
)

type PlaceServiceInterface interface {
	ListPlacesByCity(ctx context.Context, city string) ([]response_models.Place, error)
}

type PlaceService struct {
	placeRepo repositories.PlaceRepository
}

func NewPlaceService(placeRepo repositories.PlaceRepository) PlaceServiceInterface {
	return &PlaceService{
		placeRepo: placeRepo,
	}
}

func (s *PlaceService) ListPlacesByCity(ctx context.Context, city string) ([]response_models.Place, error) {
	places, err := s.placeRepo.FetchByCity(ctx, city)
	if err != nil {
		log.Printf("listing places for city %q failed: %v", city, err)
		return nil, utils.ErrDatabaseError
	}

	if len(places) == 0 {
		return []response_models.Place{}, utils.ErrPlaceNotFound
	}

	result := make([]response_models.Place, 0, len(places))
	for _, place := range places {
		result = append(result, toPlaceResponse(place))
	}
	return result, nil
}

func toPlaceResponse(place db_models.Place) response_models.Place {
	return response_models.Place{
		ID:      place.ID,
		City:    place.City,
		Name:    place.Name,
		Address: place.Address,
		Area:    place.Area,
		Type:    place.Type,
		Vibes:   place.Vibes,
		Budget:  place.Budget,
		Tags:    place.Tags,
	}
}
