package response_models

// Provenance tags recorded on every PlanResponse. They are the only audit
// trail of which path produced a plan.
const (
	SourceGemini     = "gemini"
	SourceFallback   = "fallback"
	SourceSheetEmpty = "sheet-empty"
)

type PlanItem struct {
	Time  string `json:"time"`
	Place string `json:"place"`
	Area  string `json:"area"`
	Note  string `json:"note"`
}

type PlanResponse struct {
	Plan   []PlanItem `json:"plan"`
	Notes  string     `json:"notes"`
	Source string     `json:"source"`
}
