package requestlog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store persists upstream-call entries to the request_log table.
type Store struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool, logger *slog.Logger) *Store {
	return &Store{db: db, logger: logger}
}

// Record inserts the entry best-effort. Insert failures are logged and
// swallowed so an unavailable database never breaks planning.
func (s *Store) Record(ctx context.Context, e Entry) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO request_log (provider, operation, status, latency_ms, detail, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, e.Provider, e.Operation, e.Status, e.LatencyMs, e.Detail, e.CreatedAt)
	if err != nil {
		s.logger.Warn("request log insert failed",
			"provider", e.Provider, "operation", e.Operation, "error", err)
	}
}
