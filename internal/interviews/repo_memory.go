package interviews

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores interviews in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	byID   map[string]Interview
	byUser map[string][]string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:   make(map[string]Interview),
		byUser: make(map[string][]string),
	}
}

// Create stores the interview.
func (r *MemoryRepo) Create(ctx context.Context, interview Interview) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[interview.ID] = cloneInterview(interview)
	r.byUser[interview.UserID] = append(r.byUser[interview.UserID], interview.ID)
	return nil
}

// GetByID returns an interview by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, interviewID string) (Interview, error) {
	if err := ctx.Err(); err != nil {
		return Interview{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	interview, ok := r.byID[interviewID]
	if !ok {
		return Interview{}, ErrNotFound
	}
	return cloneInterview(interview), nil
}

// Update replaces the stored interview row.
func (r *MemoryRepo) Update(ctx context.Context, interview Interview) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[interview.ID]; !ok {
		return ErrNotFound
	}
	r.byID[interview.ID] = cloneInterview(interview)
	return nil
}

// ListByUser returns a user's interviews, newest-first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Interview, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := r.byUser[userID]
	out := make([]Interview, 0, len(ids))
	for _, id := range ids {
		if interview, ok := r.byID[id]; ok {
			out = append(out, cloneInterview(interview))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	if offset >= len(out) {
		return []Interview{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func cloneInterview(in Interview) Interview {
	out := in
	out.Personality = cloneBucket(in.Personality)
	out.Talents = cloneBucket(in.Talents)
	out.Values = cloneBucket(in.Values)
	out.Session = cloneBucket(in.Session)
	return out
}

func cloneBucket(in map[string]Answer) map[string]Answer {
	if in == nil {
		return nil
	}
	out := make(map[string]Answer, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
