// README: Itinerary expander; daily plan, activity extraction, images.
package itinerary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"tripplan/internal/ai"
	"tripplan/internal/maps"
	"tripplan/internal/modules/trip"
	"tripplan/internal/obs"
)

// maxActivities bounds the highlights taken from the daily plan. The plan is
// longer; the first lines are its headline activities, one image each.
const maxActivities = 4

// Service expands a chosen trip option into a daily plan with images.
type Service struct {
	text    ai.Provider
	images  ai.ImageProvider    // nil disables image generation
	places  *maps.PlacesService // nil disables attraction enrichment
	mode    PromptMode
	logger  *slog.Logger
	metrics *obs.Metrics
}

func NewService(text ai.Provider, images ai.ImageProvider, places *maps.PlacesService, mode PromptMode, logger *slog.Logger, metrics *obs.Metrics) *Service {
	if mode == "" {
		mode = PromptModeActivities
	}
	return &Service{
		text:    text,
		images:  images,
		places:  places,
		mode:    mode,
		logger:  logger,
		metrics: metrics,
	}
}

// Expand generates the daily plan for the chosen option, extracts its first
// activities, and renders one image per activity. Image failures are
// per-activity best-effort: a failed request is logged and omitted, never
// aborting the rest.
func (s *Service) Expand(ctx context.Context, opt trip.Option, vacationType, startDate, endDate string) (*Result, error) {
	month, err := trip.MonthName(startDate)
	if err != nil {
		return nil, err
	}

	var attractions []string
	if s.places != nil {
		attractions, err = s.places.TopAttractions(ctx, opt.Destination)
		if err != nil {
			s.logger.Warn("attraction lookup failed", "destination", opt.Destination, "error", err)
			attractions = nil
		}
	}

	plan, err := s.text.CreateDailyPlan(ctx, ai.DailyPlanRequest{
		Destination:  opt.Destination,
		VacationType: vacationType,
		StartDate:    startDate,
		EndDate:      endDate,
		Month:        month,
		Attractions:  attractions,
	})
	if err != nil {
		return nil, fmt.Errorf("create daily plan: %w", err)
	}

	activities := ExtractActivities(plan, maxActivities)

	return &Result{
		Option:     opt,
		DailyPlan:  plan,
		Activities: activities,
		ImageURLs:  s.generateImages(ctx, activities),
	}, nil
}

// generateImages renders one image per prompt, skipping failures.
func (s *Service) generateImages(ctx context.Context, activities []string) []string {
	urls := make([]string, 0, len(activities))
	if s.images == nil || len(activities) == 0 {
		return urls
	}

	prompts := activities
	if s.mode == PromptModeLLM {
		suggested, err := s.text.SuggestImagePrompts(ctx, activities)
		if err != nil || len(suggested) == 0 {
			s.logger.Warn("image prompt suggestion failed, using activities", "error", err)
		} else {
			prompts = suggested
		}
	}

	for _, prompt := range prompts {
		url, err := s.images.GenerateImage(ctx, prompt)
		if err != nil {
			s.metrics.IncUpstreamErrors()
			s.logger.Warn("image generation failed", "prompt", prompt, "error", err)
			continue
		}
		s.metrics.IncImages()
		urls = append(urls, url)
	}
	return urls
}

// ExtractActivities returns the first limit non-blank lines of the plan,
// trimmed. Highlights, not a full-day breakdown.
func ExtractActivities(plan string, limit int) []string {
	var out []string
	for _, line := range strings.Split(plan, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == limit {
			break
		}
	}
	return out
}
