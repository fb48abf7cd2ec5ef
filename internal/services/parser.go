package services

import (
	"encoding/json"
	"log"
	"strings"

	"vibeplan/internal/models/response_models"
)

// planItemPayload uses pointers so a missing field is distinguishable from an
// empty string.
type planItemPayload struct {
	Time  *string `json:"time"`
	Place *string `json:"place"`
	Area  *string `json:"area"`
	Note  *string `json:"note"`
}

// ParsePlanResponse validates an LLM reply and returns nil when the content
// is unusable, which tells the caller to fall back. Markdown code fences are
// stripped first since models add them despite being told not to. Every plan
// item must carry all four string fields; one bad item rejects the whole
// response rather than shipping a partial plan.
func ParsePlanResponse(content string) *response_models.PlanResponse {
	jsonStr := strings.TrimSpace(content)
	if strings.HasPrefix(jsonStr, "```") {
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```JSON")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(strings.TrimSpace(jsonStr), "```")
		jsonStr = strings.TrimSpace(jsonStr)
	}

	var payload struct {
		Plan  *[]planItemPayload `json:"plan"`
		Notes *string            `json:"notes"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		log.Printf("Failed to parse LLM response: %v", err)
		return nil
	}

	if payload.Plan == nil || payload.Notes == nil {
		log.Printf("LLM response missing plan array or notes string")
		return nil
	}

	items := make([]response_models.PlanItem, 0, len(*payload.Plan))
	for i, item := range *payload.Plan {
		if item.Time == nil || item.Place == nil || item.Area == nil || item.Note == nil {
			log.Printf("LLM plan item %d is missing required fields, rejecting response", i)
			return nil
		}
		items = append(items, response_models.PlanItem{
			Time:  *item.Time,
			Place: *item.Place,
			Area:  *item.Area,
			Note:  *item.Note,
		})
	}

	return &response_models.PlanResponse{
		Plan:   items,
		Notes:  *payload.Notes,
		Source: response_models.SourceGemini,
	}
}
