package offers

import (
	"context"
	"fmt"
	"net/url"
)

type hotelSearchResponse struct {
	HotelsResults []hotelResult `json:"hotels_results"`
}

type hotelResult struct {
	Name string `json:"name"`
	// Price is required; properties without one cannot be budget-filtered.
	Price  *float64 `json:"price"`
	Rating float64  `json:"rating"`
}

// SearchHotels fetches properties for a destination and returns the
// highest-priced one at or under maxBudget (closest-from-below), or
// (nil, nil) when nothing qualifies. A zero or negative maxBudget, which
// happens when the flight alone exceeds the total budget, legitimately
// yields no qualifying hotel.
func (c *Client) SearchHotels(ctx context.Context, destination, checkIn, checkOut string, maxBudget float64) (*HotelOffer, error) {
	params := url.Values{}
	params.Set("engine", "google_hotels")
	params.Set("q", fmt.Sprintf(
		"hotels in %s near main attractions and landmarks, offering amenities such as free Wi-Fi, breakfast, and airport shuttle services",
		destination))
	params.Set("check_in_date", checkIn)
	params.Set("check_out_date", checkOut)
	if maxBudget > 0 {
		params.Set("max_price", fmt.Sprintf("%.0f", maxBudget))
	}

	var payload hotelSearchResponse
	if err := c.getJSON(ctx, "search_hotels", params, &payload); err != nil {
		return nil, err
	}

	return bestFitHotel(payload.HotelsResults, maxBudget), nil
}

// bestFitHotel picks the maximum-priced property with price <= maxBudget.
// The max_price hint above is advisory only, so the filter is re-applied
// locally. First-seen wins ties.
func bestFitHotel(properties []hotelResult, maxBudget float64) *HotelOffer {
	var best *hotelResult
	for i := range properties {
		p := &properties[i]
		if p.Price == nil || *p.Price > maxBudget {
			continue
		}
		if best == nil || *p.Price > *best.Price {
			best = p
		}
	}
	if best == nil {
		return nil
	}
	return &HotelOffer{
		Name:   orUnknown(best.Name),
		Price:  *best.Price,
		Rating: best.Rating,
	}
}
