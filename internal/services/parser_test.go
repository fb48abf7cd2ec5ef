package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibeplan/internal/models/response_models"
)

const validPlanJSON = `{
  "plan": [
    { "time": "09:00", "place": "Cà phê Vợt", "area": "Quận 3", "note": "Uống cà phê sáng" }
  ],
  "notes": "Một buổi sáng nhẹ nhàng"
}`

func TestParsePlanResponseValidJSON(t *testing.T) {
	parsed := ParsePlanResponse(validPlanJSON)

	require.NotNil(t, parsed)
	assert.Equal(t, response_models.SourceGemini, parsed.Source)
	assert.Equal(t, "Một buổi sáng nhẹ nhàng", parsed.Notes)
	require.Len(t, parsed.Plan, 1)
	assert.Equal(t, "09:00", parsed.Plan[0].Time)
	assert.Equal(t, "Cà phê Vợt", parsed.Plan[0].Place)
}

func TestParsePlanResponseFencedWithLanguageTag(t *testing.T) {
	parsed := ParsePlanResponse("```json\n{\"plan\":[],\"notes\":\"x\"}\n```")

	require.NotNil(t, parsed)
	assert.Equal(t, response_models.SourceGemini, parsed.Source)
	assert.Equal(t, "x", parsed.Notes)
	assert.Empty(t, parsed.Plan)
}

func TestParsePlanResponseFencedWithoutLanguageTag(t *testing.T) {
	parsed := ParsePlanResponse("```\n" + validPlanJSON + "\n```")

	require.NotNil(t, parsed)
	assert.Len(t, parsed.Plan, 1)
}

func TestParsePlanResponseSurroundingWhitespace(t *testing.T) {
	parsed := ParsePlanResponse("\n\n  " + validPlanJSON + "  \n")

	require.NotNil(t, parsed)
}

func TestParsePlanResponseNotJSON(t *testing.T) {
	assert.Nil(t, ParsePlanResponse("Xin lỗi, tôi không thể tạo kế hoạch."))
}

func TestParsePlanResponseMissingPlan(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`{"notes":"x"}`))
}

func TestParsePlanResponsePlanNotArray(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`{"plan":"not-a-list","notes":"x"}`))
}

func TestParsePlanResponseNotesNotString(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`{"plan":[],"notes":42}`))
}

func TestParsePlanResponseMissingNotes(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`{"plan":[]}`))
}

func TestParsePlanResponseItemMissingField(t *testing.T) {
	// Item has no "note"; the whole response is rejected.
	assert.Nil(t, ParsePlanResponse(`{"plan":[{"time":"09:00","place":"A","area":"B"}],"notes":"x"}`))
}

func TestParsePlanResponseItemFieldWrongType(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`{"plan":[{"time":9,"place":"A","area":"B","note":"C"}],"notes":"x"}`))
}

func TestParsePlanResponseTopLevelArray(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(`[{"time":"09:00"}]`))
}

func TestParsePlanResponseEmptyString(t *testing.T) {
	assert.Nil(t, ParsePlanResponse(""))
}
