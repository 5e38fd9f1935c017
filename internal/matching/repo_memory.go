package matching

import (
	"context"
	"sync"
)

// MemoryRepo stores results in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu          sync.RWMutex
	byInterview map[string][]Result
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byInterview: make(map[string][]Result)}
}

// Create appends the result row. Existing rows are never touched.
func (r *MemoryRepo) Create(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byInterview[result.InterviewID] = append(r.byInterview[result.InterviewID], result)
	return nil
}

// LatestByInterview returns the most recently created row for the interview.
func (r *MemoryRepo) LatestByInterview(ctx context.Context, interviewID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := r.byInterview[interviewID]
	if len(rows) == 0 {
		return Result{}, ErrNoResult
	}
	latest := rows[0]
	for _, row := range rows[1:] {
		if row.CreatedAt.After(latest.CreatedAt) || row.CreatedAt.Equal(latest.CreatedAt) {
			latest = row
		}
	}
	return latest, nil
}

// CountByInterview reports how many rows exist for an interview. Test helper
// for the duplicate-row race tolerance.
func (r *MemoryRepo) CountByInterview(interviewID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byInterview[interviewID])
}
