package offers

import (
	"context"
	"net/url"
)

// Raw google_flights payload. Fields may be absent; the mapping into
// FlightOffer applies documented defaults instead of ad hoc lookups.
type flightSearchResponse struct {
	BestFlights []flightItinerary `json:"best_flights"`
}

type flightItinerary struct {
	// Price is required for budget arithmetic; itineraries without one are
	// unusable and skipped during selection.
	Price    *float64        `json:"price"`
	Segments []flightSegment `json:"flights"`
}

type flightSegment struct {
	DepartureAirport airportStop `json:"departure_airport"`
	ArrivalAirport   airportStop `json:"arrival_airport"`
	DurationMin      int         `json:"duration"`
	Airplane         string      `json:"airplane"`
	Airline          string      `json:"airline"`
	TravelClass      string      `json:"travel_class"`
	FlightNumber     string      `json:"flight_number"`
}

type airportStop struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

// SearchFlights fetches the round-trip best flights for a route and returns
// the minimum-priced usable itinerary. Ties resolve to the first-seen entry.
// Zero usable itineraries is a normal, skippable outcome: (nil, nil).
func (c *Client) SearchFlights(ctx context.Context, origin, destinationCode, dateOut, dateReturn string) (*FlightOffer, error) {
	params := url.Values{}
	params.Set("engine", "google_flights")
	params.Set("departure_id", origin)
	params.Set("arrival_id", destinationCode)
	params.Set("outbound_date", dateOut)
	params.Set("return_date", dateReturn)
	params.Set("currency", "USD")
	params.Set("hl", "en")

	var payload flightSearchResponse
	if err := c.getJSON(ctx, "search_flights", params, &payload); err != nil {
		return nil, err
	}

	return cheapestFlight(payload.BestFlights), nil
}

// cheapestFlight selects the minimum-priced itinerary with at least one
// segment, first-seen winning ties, and maps it to a FlightOffer.
func cheapestFlight(itineraries []flightItinerary) *FlightOffer {
	var best *flightItinerary
	for i := range itineraries {
		it := &itineraries[i]
		if it.Price == nil || len(it.Segments) == 0 {
			continue
		}
		if best == nil || *it.Price < *best.Price {
			best = it
		}
	}
	if best == nil {
		return nil
	}

	first := best.Segments[0]
	last := best.Segments[len(best.Segments)-1]

	total := 0
	for _, seg := range best.Segments {
		total += seg.DurationMin
	}

	return &FlightOffer{
		Price:         *best.Price,
		Airline:       orUnknown(first.Airline),
		Departure:     orUnknown(first.DepartureAirport.Name),
		Arrival:       orUnknown(last.ArrivalAirport.Name),
		DepartureTime: orUnknown(first.DepartureAirport.Time),
		ArrivalTime:   orUnknown(last.ArrivalAirport.Time),
		DurationMin:   total,
		Airplane:      orUnknown(first.Airplane),
		TravelClass:   orUnknown(first.TravelClass),
		FlightNumber:  orUnknown(first.FlightNumber),
	}
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
