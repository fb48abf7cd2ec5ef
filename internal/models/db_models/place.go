package db_models

// Budget tiers stored in the locations table. An empty string means the
// sheet row did not specify one.
const (
	BudgetLow    = "Low"
	BudgetMedium = "Medium"
	BudgetHigh   = "High"
)

// Location is the raw locations row. The vibes and tags columns hold
// semicolon-joined values exactly as imported from the source sheet.
type Location struct {
	BaseModel
	City    string
	Name    string
	Address string
	Area    string
	Type    string
	Vibes   string
	Budget  string
	Tags    string
	Source  string
}

func (Location) TableName() string {
	return "locations"
}

// Place is a Location with its list fields already split. This is what the
// repository hands to the planning pipeline; it is never written back.
type Place struct {
	ID      string
	City    string
	Name    string
	Address string
	Area    string
	Type    string
	Vibes   []string
	Budget  string
	Tags    []string
	Source  string
}
