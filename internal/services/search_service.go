package services

import (
	"context"
	"log"
	"strings"

	"vibeplan/internal/models/response_models"
	"vibeplan/internal/repositories"
	"vibeplan/pkg/utils"
)

type SearchServiceInterface interface {
	SearchPlaces(ctx context.Context, query string, limit int) ([]response_models.Place, error)
}

type SearchService struct {
	aiClient      utils.AIClientInterface
	embeddingRepo repositories.IPlaceEmbeddingRepository
}

func NewSearchService(aiClient utils.AIClientInterface, embeddingRepo repositories.IPlaceEmbeddingRepository) SearchServiceInterface {
	return &SearchService{
		aiClient:      aiClient,
		embeddingRepo: embeddingRepo,
	}
}

// SearchPlaces finds places whose embedding is close to the free-text query.
// Complements the city-filtered planning path for "find me something like..."
// style exploration.
func (s *SearchService) SearchPlaces(ctx context.Context, query string, limit int) ([]response_models.Place, error) {
	if strings.TrimSpace(query) == "" {
		return nil, utils.ErrInvalidInput
	}

	vector, err := s.aiClient.GetEmbedding(ctx, query)
	if err != nil {
		log.Printf("embedding query failed: %v", err)
		return nil, utils.ErrAIUnavailable
	}

	matches, err := s.embeddingRepo.SearchByVector(ctx, vector, limit)
	if err != nil {
		log.Printf("vector search failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	if len(matches) == 0 {
		return []response_models.Place{}, utils.ErrPlaceNotFound
	}

	result := make([]response_models.Place, 0, len(matches))
	for _, match := range matches {
		result = append(result, response_models.Place{
			ID:   match.PlaceID,
			City: match.City,
			Name: match.Name,
			Area: match.Area,
			Tags: match.Tags,
		})
	}
	return result, nil
}
