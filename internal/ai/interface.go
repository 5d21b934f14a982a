package ai

import (
	"context"
	"errors"
)

// ErrUpstream marks failures of the text/image generation collaborators.
// Callers use errors.Is to distinguish them from validation problems.
var ErrUpstream = errors.New("upstream generation request failed")

// Provider defines the contract for text-generation collaborators.
// This interface allows swapping providers (Gemini, OpenAI, etc.).
type Provider interface {
	// SuggestDestinations asks for exactly five candidate destinations
	// suitable for the given vacation type and month, in suggestion order.
	SuggestDestinations(ctx context.Context, vacationType, month string) ([]DestinationCandidate, error)

	// CreateDailyPlan generates a free-text day-by-day itinerary for a trip.
	// One request per call; results are not cached.
	CreateDailyPlan(ctx context.Context, req DailyPlanRequest) (string, error)

	// SuggestImagePrompts turns itinerary activities into creative
	// image-generation prompts, at most one per activity.
	SuggestImagePrompts(ctx context.Context, activities []string) ([]string, error)
}

// DailyPlanRequest carries the trip parameters for itinerary generation.
type DailyPlanRequest struct {
	Destination  string
	VacationType string
	StartDate    string
	EndDate      string
	Month        string
	// Attractions optionally grounds the plan in real places. May be empty.
	Attractions []string
}

// ImageProvider defines the contract for image-generation collaborators.
type ImageProvider interface {
	// GenerateImage renders one image for the prompt and returns its URL.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
