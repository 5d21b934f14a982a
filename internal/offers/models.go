package offers

// Unknown is the sentinel for descriptive fields the upstream payload omits.
// Price has no sentinel: an offer without a price is unusable for budgeting
// and is dropped during selection.
const Unknown = "Unknown"

// FlightOffer is the cheapest round-trip itinerary found for a destination.
// Times are opaque display strings as returned by the search engine; duration
// is the sum over connecting segments in minutes.
type FlightOffer struct {
	Price         float64 `json:"price"`
	Airline       string  `json:"airline"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	DurationMin   int     `json:"duration_min"`
	Airplane      string  `json:"airplane"`
	TravelClass   string  `json:"travel_class"`
	FlightNumber  string  `json:"flight_number"`
}

// HotelOffer is the best-fit property for a destination: the highest-priced
// one at or under the remaining budget. Maximizing price within budget is a
// deliberate quality-for-the-money policy, not cheapest-wins.
type HotelOffer struct {
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Rating float64 `json:"rating,omitempty"`
}
