package response_models

type Place struct {
	ID      string   `json:"id"`
	City    string   `json:"city"`
	Name    string   `json:"name"`
	Address string   `json:"address,omitempty"`
	Area    string   `json:"area"`
	Type    string   `json:"type"`
	Vibes   []string `json:"vibes"`
	Budget  string   `json:"budget,omitempty"`
	Tags    []string `json:"tags"`
}

// TagOptions feeds the client form's vibe and interest pickers.
type TagOptions struct {
	Vibes     []string `json:"vibes"`
	Interests []string `json:"interests"`
}
