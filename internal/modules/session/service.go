// README: Session service; records plan results and resolves choices.
package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"tripplan/internal/modules/trip"
)

// Service records plan results and resolves 1-based selections against them.
type Service struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Record stores a fresh session for the given plan run and makes it the
// latest one. Each plan call produces a new session; prior sessions are left
// to expire rather than merged.
func (s *Service) Record(ctx context.Context, vacationType, startDate, endDate string, options []trip.Option) (*Session, error) {
	sess := &Session{
		ID:           uuid.NewString(),
		VacationType: vacationType,
		StartDate:    startDate,
		EndDate:      endDate,
		Options:      options,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.logger.Info("session recorded", "session_id", sess.ID, "options", len(options))
	return sess, nil
}

// Resolve returns the session and the chosen option. An empty id resolves the
// most recent session. choice is 1-based; values outside [1, len(options)]
// yield ErrInvalidChoice so callers can render a uniform rejection message.
func (s *Service) Resolve(ctx context.Context, id string, choice int) (*Session, trip.Option, error) {
	var (
		sess *Session
		err  error
	)
	if id == "" {
		sess, err = s.store.Latest(ctx)
	} else {
		sess, err = s.store.Get(ctx, id)
	}
	if err != nil {
		return nil, trip.Option{}, err
	}

	if choice < 1 || choice > len(sess.Options) {
		return sess, trip.Option{}, ErrInvalidChoice
	}
	return sess, sess.Options[choice-1], nil
}
