package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibeplan/internal/models/db_models"
)

func candidates(n int) []db_models.Place {
	out := make([]db_models.Place, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, db_models.Place{
			Name: fmt.Sprintf("place-%d", i),
			Area: fmt.Sprintf("area-%d", i),
		})
	}
	return out
}

func TestBuildFallbackPlanEmptyCandidates(t *testing.T) {
	assert.Empty(t, BuildFallbackPlan(nil, "morning"))
}

func TestBuildFallbackPlanNeverExceedsThreeItems(t *testing.T) {
	plan := BuildFallbackPlan(candidates(7), "morning")

	require.Len(t, plan, 3)
	assert.Equal(t, []string{"08:00", "09:00", "10:00"}, []string{plan[0].Time, plan[1].Time, plan[2].Time})
}

func TestBuildFallbackPlanReturnsMinOfThreeAndCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		want := n
		if want > 3 {
			want = 3
		}
		assert.Len(t, BuildFallbackPlan(candidates(n), "evening"), want, "n=%d", n)
	}
}

func TestBuildFallbackPlanTimeTables(t *testing.T) {
	tests := []struct {
		slot  string
		times []string
	}{
		{"morning", []string{"08:00", "09:00", "10:00"}},
		{"afternoon", []string{"13:00", "14:00", "15:00"}},
		{"evening", []string{"18:00", "19:00", "20:00"}},
		{"full-day", []string{"08:00", "12:00", "17:00"}},
		{"weekend", []string{"09:00", "13:00", "18:00"}},
		{"midnight-cruise", []string{"09:00", "13:00", "18:00"}}, // unknown slot
	}

	for _, tc := range tests {
		plan := BuildFallbackPlan(candidates(3), tc.slot)
		require.Len(t, plan, 3, tc.slot)
		for i, item := range plan {
			assert.Equal(t, tc.times[i], item.Time, "%s item %d", tc.slot, i)
		}
	}
}

func TestBuildFallbackPlanItemsNamePlaceAndArea(t *testing.T) {
	plan := BuildFallbackPlan(candidates(2), "weekend")

	require.Len(t, plan, 2)
	assert.Equal(t, "place-0", plan[0].Place)
	assert.Equal(t, "area-0", plan[0].Area)
	assert.Contains(t, plan[0].Note, "place-0")
	assert.Contains(t, plan[0].Note, "area-0")
	assert.Contains(t, plan[1].Note, "giờ mở cửa")
}
