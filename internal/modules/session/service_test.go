package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"tripplan/internal/modules/trip"
)

func newTestService() *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(NewMemoryStore(), logger)
}

func threeOptions() []trip.Option {
	return []trip.Option{
		{Destination: "Bali", TotalPrice: 800},
		{Destination: "Lisbon", TotalPrice: 1200},
		{Destination: "Tokyo", TotalPrice: 2500},
	}
}

func TestRecordAndResolve(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.Record(ctx, "beach", "2026-06-01", "2026-06-15", threeOptions())
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if sess.ID == "" {
		t.Fatal("expected a generated session id")
	}

	got, opt, err := svc.Resolve(ctx, sess.ID, 2)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != sess.ID {
		t.Errorf("resolved session %q, want %q", got.ID, sess.ID)
	}
	if opt.Destination != "Lisbon" {
		t.Errorf("choice 2 = %q, want the second option", opt.Destination)
	}
}

func TestResolveEmptyIDUsesLatest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Record(ctx, "beach", "2026-06-01", "2026-06-15", threeOptions()); err != nil {
		t.Fatalf("Record: %v", err)
	}
	second, err := svc.Record(ctx, "ski", "2026-12-01", "2026-12-08", threeOptions()[:1])
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	got, opt, err := svc.Resolve(ctx, "", 1)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("empty id resolved session %q, want the most recent %q", got.ID, second.ID)
	}
	if opt.Destination != "Bali" {
		t.Errorf("choice 1 = %q, want %q", opt.Destination, "Bali")
	}
}

func TestResolveInvalidChoice(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	sess, err := svc.Record(ctx, "beach", "2026-06-01", "2026-06-15", threeOptions())
	if err != nil {
		t.Fatalf("Record: %v", err)
	}

	for _, choice := range []int{0, -1, 4, 6} {
		if _, _, err := svc.Resolve(ctx, sess.ID, choice); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("Resolve(choice=%d) error = %v, want ErrInvalidChoice", choice, err)
		}
	}
}

func TestResolveNoSession(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, _, err := svc.Resolve(ctx, "", 1); !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, want ErrNoSession when nothing was planned", err)
	}
	if _, _, err := svc.Resolve(ctx, "unknown-id", 1); !errors.Is(err, ErrNoSession) {
		t.Errorf("error = %v, want ErrNoSession for an unknown id", err)
	}
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a := &Session{ID: "a", Options: threeOptions()[:1]}
	b := &Session{ID: "b", Options: threeOptions()[:2]}
	if err := store.Save(ctx, a); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(ctx, b); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get(ctx, "a")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Options) != 1 {
		t.Errorf("session a has %d options, want 1", len(got.Options))
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest.ID != "b" {
		t.Errorf("latest = %q, want b", latest.ID)
	}
}
