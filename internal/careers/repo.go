package careers

import "context"

// Repo defines read access to the career catalog. List must return careers
// in stable catalog order; the ranking tie-break depends on it.
type Repo interface {
	List(ctx context.Context) ([]Career, error)
	GetByID(ctx context.Context, careerID string) (Career, error)
}
