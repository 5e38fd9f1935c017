package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	DB *sql.DB
}

// NewService constructs a new health service. DB may be nil when running on
// the in-memory repos.
func NewService(db *sql.DB) *Service {
	return &Service{DB: db}
}

// Status returns a simple health payload, including database reachability
// when a database is configured.
func (s *Service) Status(ctx context.Context) map[string]any {
	out := map[string]any{"ok": true}
	if s.DB != nil {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		out["db"] = s.DB.PingContext(pingCtx) == nil
	}
	return out
}
