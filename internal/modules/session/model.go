// README: Planning session aggregate; remembers the last assembled options.
package session

import (
	"errors"
	"time"

	"tripplan/internal/modules/trip"
)

// Session is the memory of one plan run: the options it produced plus the
// parameters that produced them, so a later choose call can expand a 1-based
// selection into an itinerary.
type Session struct {
	ID           string        `json:"id"`
	VacationType string        `json:"vacation_type"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Options      []trip.Option `json:"options"`
	CreatedAt    time.Time     `json:"created_at"`
}

var (
	// ErrNoSession is returned when no planning session exists (nothing
	// planned yet, unknown id, or the session expired).
	ErrNoSession = errors.New("no active planning session")

	// ErrInvalidChoice is returned when a 1-based selection is out of range
	// for the session's option list.
	ErrInvalidChoice = errors.New("invalid choice")
)
