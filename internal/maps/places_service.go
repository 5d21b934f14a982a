package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// PlacesService looks up well-known attractions for a destination via the
// Google Places API. It is an optional enrichment: itinerary generation works
// without it, and callers treat every failure as best-effort.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// TopAttractions returns up to five highly rated attraction names for the
// destination, used to ground the daily-plan prompt in real places.
func (s *PlacesService) TopAttractions(ctx context.Context, destination string) ([]string, error) {
	r := &maps.TextSearchRequest{
		Query:    "top tourist attractions in " + destination,
		Language: "en",
	}

	resp, err := s.client.TextSearch(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var names []string
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		names = append(names, result.Name)
		if len(names) >= 5 {
			break
		}
	}
	return names, nil
}
