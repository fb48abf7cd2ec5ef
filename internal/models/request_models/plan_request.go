package request_models

// PlanRequest is the body of POST /plan. City and time slot are required by
// the form contract; vibes and interests may arrive empty and the planner
// must cope.
type PlanRequest struct {
	City      string   `json:"city" binding:"required"`
	TimeSlot  string   `json:"time_slot" binding:"required"`
	Vibes     []string `json:"vibes"`
	Interests []string `json:"interests"`
	Budget    string   `json:"budget"`
	GroupSize string   `json:"group_size"`
}

type PlaceSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit"`
}
