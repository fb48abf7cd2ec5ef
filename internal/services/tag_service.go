package services

import (
	"context"
	"log"

	"vibeplan/internal/models/response_models"
	"vibeplan/internal/repositories"
	"vibeplan/pkg/utils"
)

type TagServiceInterface interface {
	ListTagOptions(ctx context.Context) (response_models.TagOptions, error)
}

type TagService struct {
	tagRepo repositories.TagRepositoryInterface
}

func NewTagService(tagRepo repositories.TagRepositoryInterface) TagServiceInterface {
	return &TagService{
		tagRepo: tagRepo,
	}
}

// ListTagOptions collects the distinct vibe and interest values known to the
// locations table so the client form offers only values that can match.
func (t *TagService) ListTagOptions(ctx context.Context) (response_models.TagOptions, error) {
	vibes, err := t.tagRepo.ListVibes(ctx)
	if err != nil {
		log.Printf("listing vibes failed: %v", err)
		return response_models.TagOptions{}, utils.ErrDatabaseError
	}

	interests, err := t.tagRepo.ListInterests(ctx)
	if err != nil {
		log.Printf("listing interests failed: %v", err)
		return response_models.TagOptions{}, utils.ErrDatabaseError
	}

	if vibes == nil {
		vibes = []string{}
	}
	if interests == nil {
		interests = []string{}
	}

	return response_models.TagOptions{
		Vibes:     vibes,
		Interests: interests,
	}, nil
}
