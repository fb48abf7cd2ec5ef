package services

import (
	"context"
	"log"
	"time"

	"vibeplan/internal/models/request_models"
	"vibeplan/internal/models/response_models"
	"vibeplan/internal/repositories"
	"vibeplan/pkg/utils"
)

// The LLM call either answers inside this window or we plan without it.
const llmTimeout = 15 * time.Second

type PlanServiceInterface interface {
	GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.PlanResponse
}

type PlanService struct {
	placeRepo repositories.PlaceRepository
	aiClient  utils.AIClientInterface
}

func NewPlanService(placeRepo repositories.PlaceRepository, aiClient utils.AIClientInterface) PlanServiceInterface {
	return &PlanService{
		placeRepo: placeRepo,
		aiClient:  aiClient,
	}
}

// GeneratePlan is the error boundary of the planning pipeline: every failure
// degrades to a presentable PlanResponse, never to an error. Three terminal
// states, checked in order: sheet-empty (no candidates), fallback (LLM
// unusable), gemini (LLM answered with a valid plan).
func (s *PlanService) GeneratePlan(ctx context.Context, req request_models.PlanRequest) response_models.PlanResponse {
	places, err := s.placeRepo.FetchByCity(ctx, req.City)
	if err != nil {
		// An unreachable store degrades to the same empty-plan answer as an
		// unknown city; this log line is what keeps the two distinguishable.
		log.Printf("place fetch failed for city %q: %v", req.City, err)
		places = nil
	}

	if len(places) == 0 {
		return response_models.PlanResponse{
			Plan:   []response_models.PlanItem{},
			Notes:  msgNoPlaces,
			Source: response_models.SourceSheetEmpty,
		}
	}

	ranked := RankPlaces(places, req.Vibes, req.Interests, req.Budget)
	prompt := BuildPlanPrompt(req, ranked)

	llmCtx, cancel := context.WithTimeout(ctx, llmTimeout)
	defer cancel()

	content, err := s.aiClient.CompleteChat(llmCtx, []utils.ChatMessage{
		{Role: "user", Content: prompt},
	})
	if err != nil {
		log.Printf("LLM call failed: %v", err)
	} else if content != "" {
		if parsed := ParsePlanResponse(content); parsed != nil {
			return *parsed
		}
	}

	return response_models.PlanResponse{
		Plan:   BuildFallbackPlan(ranked, req.TimeSlot),
		Notes:  fallbackNotes(req.City, req.TimeSlot),
		Source: response_models.SourceFallback,
	}
}
