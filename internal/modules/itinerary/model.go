package itinerary

import "tripplan/internal/modules/trip"

// Result is a chosen trip option expanded into a day-by-day plan, a bounded
// set of activity highlights, and best-effort illustrative images.
type Result struct {
	Option     trip.Option `json:"option"`
	DailyPlan  string      `json:"daily_plan"`
	Activities []string    `json:"activities"`
	ImageURLs  []string    `json:"image_urls"`
}

// PromptMode selects how image-generation prompts are derived.
type PromptMode string

const (
	// PromptModeActivities uses the extracted activity lines directly.
	// This is the primary strategy.
	PromptModeActivities PromptMode = "activities"
	// PromptModeLLM asks the text provider to rewrite activities into
	// creative prompts, falling back to the raw lines on failure.
	PromptModeLLM PromptMode = "llm"
)
