package careers

// Requirements is the structured blob describing what a career rewards.
// Every field is optional; absent fields simply contribute no score deltas.
type Requirements struct {
	Skills           []string `json:"skills,omitempty"`
	Traits           []string `json:"traits,omitempty"`
	WorkEnvironment  string   `json:"workEnvironment,omitempty"`
	Collaboration    string   `json:"collaboration,omitempty"`
	Structure        string   `json:"structure,omitempty"`
	LearningStyle    string   `json:"learningStyle,omitempty"`
	Values           []string `json:"values,omitempty"`
	MinRiskTolerance float64  `json:"minRiskTolerance,omitempty"`
}

// Career is a static catalog entry. Immutable during a scoring run.
type Career struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Requirements Requirements `json:"requirements"`
	Category     string       `json:"category"`
}
