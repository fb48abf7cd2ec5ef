package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"vibeplan/internal/models/db_models"
	"vibeplan/internal/models/request_models"
)

// promptCandidate is the slimmed-down place view embedded in the prompt.
type promptCandidate struct {
	Name   string   `json:"name"`
	Area   string   `json:"area"`
	Type   string   `json:"type"`
	Vibes  []string `json:"vibes"`
	Budget string   `json:"budget"`
	Tags   []string `json:"tags"`
}

// BuildPlanPrompt renders the Vietnamese instruction sent to the LLM. At most
// the first ten candidates are embedded as a JSON block; the model is told to
// pick 2-4 of them and answer with a bare JSON object.
func BuildPlanPrompt(req request_models.PlanRequest, candidates []db_models.Place) string {
	limit := len(candidates)
	if limit > 10 {
		limit = 10
	}

	view := make([]promptCandidate, 0, limit)
	for _, place := range candidates[:limit] {
		view = append(view, promptCandidate{
			Name:   place.Name,
			Area:   place.Area,
			Type:   place.Type,
			Vibes:  place.Vibes,
			Budget: place.Budget,
			Tags:   place.Tags,
		})
	}

	candidatesJSON, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		candidatesJSON = []byte("[]")
	}

	return fmt.Sprintf(`Bạn là một hướng dẫn du lịch chuyên nghiệp tại %s, Việt Nam. Hãy tạo một kế hoạch du lịch dựa trên yêu cầu của khách hàng.

Yêu cầu của khách hàng:
- Thành phố: %s
- Khung giờ: %s
- Vibe/Tâm trạng: %s
- Sở thích: %s
- Ngân sách: %s
- Kích thước nhóm: %s

Các địa điểm có sẵn:
%s

Hãy:
1. Chọn 2-4 địa điểm phù hợp nhất từ danh sách trên
2. Gán khung giờ thích hợp cho mỗi địa điểm
3. Tạo một kế hoạch chi tiết

Trả về CHỈ JSON (không có markdown, không có code fence) với cấu trúc sau:
{
  "plan": [
    { "time": "HH:MM", "place": "Tên địa điểm", "area": "Khu vực", "note": "Mô tả ngắn" }
  ],
  "notes": "Ghi chú tổng quát về kế hoạch"
}`,
		req.City,
		req.City,
		req.TimeSlot,
		joinOrUnspecified(req.Vibes),
		joinOrUnspecified(req.Interests),
		orUnspecified(req.Budget),
		orUnspecified(req.GroupSize),
		candidatesJSON,
	)
}

func joinOrUnspecified(values []string) string {
	joined := strings.Join(values, ", ")
	return orUnspecified(joined)
}

func orUnspecified(value string) string {
	if value == "" {
		return "Không chỉ định"
	}
	return value
}
