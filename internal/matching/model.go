package matching

import "time"

// Confidence tiers, ordered low < medium < high.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// CareerMatch is one ranked entry in a generated result set. Created once
// per (interview, career) pair per generation and never mutated afterward.
type CareerMatch struct {
	CareerID    string   `json:"careerId"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Score       int      `json:"score"`
	Confidence  string   `json:"confidence"`
	Explanation string   `json:"explanation"`
	Strengths   []string `json:"strengths"`
	GrowthAreas []string `json:"growthAreas"`
	Roadmap     string   `json:"roadmap"`
}

// Result is one persisted result row. Rows are append-only: re-generation
// inserts a new row and older rows are kept for audit.
type Result struct {
	ID               string        `json:"id"`
	InterviewID      string        `json:"interviewId"`
	InterviewType    string        `json:"interviewType"`
	Matches          []CareerMatch `json:"matches"`
	DataCompleteness int           `json:"dataCompleteness"`
	CreatedAt        time.Time     `json:"analysisDate"`
}
