package services

import (
	"fmt"

	"vibeplan/internal/models/db_models"
	"vibeplan/internal/models/response_models"
)

// Clock times per requested slot; each table carries one entry per fallback
// plan position.
var fallbackTimeTables = map[string][]string{
	"morning":   {"08:00", "09:00", "10:00"},
	"afternoon": {"13:00", "14:00", "15:00"},
	"evening":   {"18:00", "19:00", "20:00"},
	"full-day":  {"08:00", "12:00", "17:00"},
	"weekend":   {"09:00", "13:00", "18:00"},
}

var defaultTimeTable = []string{"09:00", "13:00", "18:00"}

// BuildFallbackPlan turns the top ranked candidates into a deterministic
// itinerary when the LLM path is unavailable. Takes at most three candidates;
// they are assumed to be pre-ranked.
func BuildFallbackPlan(candidates []db_models.Place, timeSlot string) []response_models.PlanItem {
	if len(candidates) == 0 {
		return []response_models.PlanItem{}
	}

	times, ok := fallbackTimeTables[timeSlot]
	if !ok {
		times = defaultTimeTable
	}

	count := len(candidates)
	if count > 3 {
		count = 3
	}

	items := make([]response_models.PlanItem, 0, count)
	for i := 0; i < count; i++ {
		itemTime := ""
		if i < len(times) {
			itemTime = times[i]
		} else {
			itemTime = fmt.Sprintf("%d:00", 9+i*4)
		}

		place := candidates[i]
		items = append(items, response_models.PlanItem{
			Time:  itemTime,
			Place: place.Name,
			Area:  place.Area,
			Note:  fallbackItemNote(place.Name, place.Area),
		})
	}

	return items
}
