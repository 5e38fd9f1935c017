package careers

import (
	"context"
	"sync"
)

// MemoryRepo serves a fixed catalog from memory and is safe for concurrent use.
type MemoryRepo struct {
	mu      sync.RWMutex
	catalog []Career
}

// NewMemoryRepo constructs a MemoryRepo over the default catalog.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{catalog: DefaultCatalog()}
}

// NewMemoryRepoWith constructs a MemoryRepo over the given catalog, preserving order.
func NewMemoryRepoWith(catalog []Career) *MemoryRepo {
	return &MemoryRepo{catalog: append([]Career(nil), catalog...)}
}

// List returns the catalog in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Career, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Career(nil), r.catalog...), nil
}

// GetByID returns a single career by id.
func (r *MemoryRepo) GetByID(ctx context.Context, careerID string) (Career, error) {
	if err := ctx.Err(); err != nil {
		return Career{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, career := range r.catalog {
		if career.ID == careerID {
			return career, nil
		}
	}
	return Career{}, ErrNotFound
}
