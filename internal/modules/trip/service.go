// README: Trip option assembler; prices suggested destinations against the budget.
package trip

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"tripplan/internal/ai"
	"tripplan/internal/obs"
	"tripplan/internal/offers"
)

// Service turns loosely structured destination suggestions into a validated,
// priced, budget-filtered list of trip options.
type Service struct {
	suggestions ai.Provider
	offers      offers.Searcher
	origin      string
	logger      *slog.Logger
	metrics     *obs.Metrics
}

// NewService creates an assembler. origin is the fixed departure airport code
// flights are searched from.
func NewService(suggestions ai.Provider, searcher offers.Searcher, origin string, logger *slog.Logger, metrics *obs.Metrics) *Service {
	return &Service{
		suggestions: suggestions,
		offers:      searcher,
		origin:      origin,
		logger:      logger,
		metrics:     metrics,
	}
}

// outcome is the result of pricing one destination: exactly one field is set.
type outcome struct {
	opt  *Option
	skip *Skip
}

// Assemble suggests destinations for the vacation type and prices each with
// one flight and one hotel offer. A suggestion failure is fatal; everything
// that goes wrong for an individual destination only skips that destination.
// Output order follows suggestion order, and an empty option list with no
// error is a legitimate result when every destination was skippable.
func (s *Service) Assemble(ctx context.Context, vacationType, startDate, endDate string, budget float64) ([]Option, []Skip, error) {
	month, err := MonthName(startDate)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := s.suggestions.SuggestDestinations(ctx, vacationType, month)
	if err != nil {
		return nil, nil, fmt.Errorf("suggest destinations: %w", err)
	}

	// Destinations are independent, so their flight+hotel lookups run
	// concurrently. The indexed write-back keeps suggestion order, and one
	// destination's failure never cancels another's in-flight work.
	results := make([]outcome, len(candidates))
	var wg sync.WaitGroup
	for i, cand := range candidates {
		wg.Add(1)
		go func(i int, cand ai.DestinationCandidate) {
			defer wg.Done()
			results[i] = s.price(ctx, cand, startDate, endDate, budget)
		}(i, cand)
	}
	wg.Wait()

	options := make([]Option, 0, len(candidates))
	skips := make([]Skip, 0)
	for _, r := range results {
		switch {
		case r.opt != nil:
			options = append(options, *r.opt)
		case r.skip != nil:
			skips = append(skips, *r.skip)
		}
	}

	s.metrics.IncPlans()
	s.metrics.AddOptions(len(options))
	s.metrics.AddSkips(len(skips))
	s.logger.Info("trip options assembled",
		"vacation_type", vacationType,
		"suggested", len(candidates),
		"options", len(options),
		"skipped", len(skips))

	return options, skips, nil
}

// price fetches the flight and then the best-fit hotel for one candidate.
func (s *Service) price(ctx context.Context, cand ai.DestinationCandidate, startDate, endDate string, budget float64) outcome {
	if !cand.FlightEligible() {
		return s.skip(cand, SkipNoAirportCode, nil)
	}

	flight, err := s.offers.SearchFlights(ctx, s.origin, cand.AirportCode, startDate, endDate)
	if err != nil {
		return s.skip(cand, SkipUpstream, err)
	}
	if flight == nil {
		return s.skip(cand, SkipNoFlight, nil)
	}

	remaining := budget - flight.Price
	hotel, err := s.offers.SearchHotels(ctx, cand.Raw, startDate, endDate, remaining)
	if err != nil {
		return s.skip(cand, SkipUpstream, err)
	}
	if hotel == nil {
		return s.skip(cand, SkipNoHotel, nil)
	}

	return outcome{opt: &Option{
		Destination: cand.Raw,
		AirportCode: cand.AirportCode,
		Flight:      *flight,
		Hotel:       *hotel,
		TotalPrice:  flight.Price + hotel.Price,
	}}
}

func (s *Service) skip(cand ai.DestinationCandidate, reason SkipReason, err error) outcome {
	if err != nil {
		s.metrics.IncUpstreamErrors()
		s.logger.Warn("destination skipped", "destination", cand.Raw, "reason", reason, "error", err)
	} else {
		s.logger.Info("destination skipped", "destination", cand.Raw, "reason", reason)
	}
	return outcome{skip: &Skip{Destination: cand.Raw, Reason: reason}}
}
