package requestlog

import (
	"context"
	"time"
)

// Entry describes one call to an upstream collaborator (LLM, offer search,
// image generation). Entries are diagnostic only; losing one is harmless.
type Entry struct {
	Provider  string
	Operation string
	Status    string
	LatencyMs int64
	Detail    string
	CreatedAt time.Time
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Recorder accepts upstream-call entries. Implementations must be safe for
// concurrent use and must never fail the caller.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}

// Nop discards all entries. Used when no database is configured.
type Nop struct{}

func (Nop) Record(context.Context, Entry) {}
