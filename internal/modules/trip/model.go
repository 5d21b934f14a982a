// README: Trip option aggregate and skip-report definitions.
package trip

import (
	"errors"
	"time"

	"tripplan/internal/offers"
)

// Option is a fully priced trip candidate: a destination with one flight and
// one hotel offer whose combined price fits the budget.
type Option struct {
	Destination string             `json:"destination"`
	AirportCode string             `json:"airport_code,omitempty"`
	Flight      offers.FlightOffer `json:"flight"`
	Hotel       offers.HotelOffer  `json:"hotel"`
	TotalPrice  float64            `json:"total_price"`
}

// SkipReason classifies why a suggested destination produced no option.
type SkipReason string

const (
	SkipNoAirportCode SkipReason = "no_airport_code"
	SkipNoFlight      SkipReason = "no_flight"
	SkipNoHotel       SkipReason = "no_hotel_within_budget"
	SkipUpstream      SkipReason = "upstream_error"
)

// Skip records one skipped destination. Skips are expected steady-state
// outcomes, reported rather than raised, so callers and tests can see why a
// destination dropped out instead of just that it did.
type Skip struct {
	Destination string     `json:"destination"`
	Reason      SkipReason `json:"reason"`
}

// ErrBadDate is returned when a trip date is not in YYYY-MM-DD form.
var ErrBadDate = errors.New("date must be in YYYY-MM-DD format")

// MonthName resolves a YYYY-MM-DD date to its English month name.
func MonthName(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", ErrBadDate
	}
	return t.Format("January"), nil
}
