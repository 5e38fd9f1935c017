package interviews

import "context"

// Repo defines persistence operations for interviews. Update is a single-row
// write; no cross-row transaction is assumed.
type Repo interface {
	Create(ctx context.Context, interview Interview) error
	GetByID(ctx context.Context, interviewID string) (Interview, error)
	Update(ctx context.Context, interview Interview) error
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error)
}
