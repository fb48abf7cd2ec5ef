package services

import (
	"sort"

	"vibeplan/internal/models/db_models"
)

// scoredPlace only exists during ranking; the score never leaves this file.
type scoredPlace struct {
	place db_models.Place
	score int
}

// RankPlaces orders candidates by how well they match the requested vibes,
// interests and budget. Ties keep their fetch order, and when nothing matched
// at all the input order is returned untouched instead of a meaningless
// shuffle. The input slice is never reordered in place.
func RankPlaces(places []db_models.Place, vibes, interests []string, budget string) []db_models.Place {
	scored := make([]scoredPlace, 0, len(places))
	allZero := true
	for _, place := range places {
		score := matchScore(place, vibes, interests, budget)
		if score > 0 {
			allZero = false
		}
		scored = append(scored, scoredPlace{place: place, score: score})
	}

	if allZero {
		return append([]db_models.Place(nil), places...)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	ranked := make([]db_models.Place, 0, len(scored))
	for _, sp := range scored {
		ranked = append(ranked, sp.place)
	}
	return ranked
}

func matchScore(place db_models.Place, vibes, interests []string, budget string) int {
	score := 0

	// +1 for each matching vibe
	for _, vibe := range vibes {
		if containsString(place.Vibes, vibe) {
			score++
		}
	}

	// +1 for each matching interest (check tags and vibes)
	for _, interest := range interests {
		if containsString(place.Tags, interest) || containsString(place.Vibes, interest) {
			score++
		}
	}

	// Boost budget matching places
	if budget != "" && place.Budget == budget {
		score += 2
	}

	return score
}

func containsString(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
