package matching

import "context"

// Repo defines persistence for generated results. Rows are append-only;
// LatestByInterview returns the most recent row by creation time.
type Repo interface {
	Create(ctx context.Context, result Result) error
	LatestByInterview(ctx context.Context, interviewID string) (Result, error)
}
