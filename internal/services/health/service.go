package health

import (
	"context"
	"database/sql"
	"time"
)

// Service reports process liveness and, when a database is configured,
// connectivity to it.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when the server
// runs on in-memory repositories.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns the health payload served on the health endpoint.
func (s *Service) Status() map[string]any {
	out := map[string]any{"ok": true}
	if s.db == nil {
		return out
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		out["ok"] = false
		out["database"] = "unreachable"
		return out
	}
	out["database"] = "ok"
	return out
}
