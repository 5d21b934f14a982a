package itinerary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"testing"

	"tripplan/internal/ai"
	"tripplan/internal/modules/trip"
	"tripplan/internal/obs"
)

type fakeText struct {
	plan       string
	planErr    error
	prompts    []string
	promptsErr error
}

func (f *fakeText) SuggestDestinations(ctx context.Context, vacationType, month string) ([]ai.DestinationCandidate, error) {
	return nil, nil
}

func (f *fakeText) CreateDailyPlan(ctx context.Context, req ai.DailyPlanRequest) (string, error) {
	return f.plan, f.planErr
}

func (f *fakeText) SuggestImagePrompts(ctx context.Context, activities []string) ([]string, error) {
	return f.prompts, f.promptsErr
}

type fakeImages struct {
	failOn  map[string]bool
	prompts []string
}

func (f *fakeImages) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.failOn[prompt] {
		return "", errors.New("render failed")
	}
	return "https://img.test/" + prompt, nil
}

func newTestService(text ai.Provider, images ai.ImageProvider, mode PromptMode) *Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(text, images, nil, mode, logger, obs.NewMetrics())
}

const samplePlan = `Day 1: Arrive and relax at Kuta Beach

Day 2: Sunrise hike up Mount Batur
Day 3: Visit the Uluwatu Temple
  Day 4: Snorkeling at Nusa Penida
Day 5: Spa day
Day 6: Departure`

func TestExpand(t *testing.T) {
	text := &fakeText{plan: samplePlan}
	images := &fakeImages{}
	svc := newTestService(text, images, PromptModeActivities)

	result, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}

	if result.DailyPlan != samplePlan {
		t.Error("daily plan should be returned verbatim")
	}
	wantActivities := []string{
		"Day 1: Arrive and relax at Kuta Beach",
		"Day 2: Sunrise hike up Mount Batur",
		"Day 3: Visit the Uluwatu Temple",
		"Day 4: Snorkeling at Nusa Penida",
	}
	if !reflect.DeepEqual(result.Activities, wantActivities) {
		t.Errorf("activities = %v, want first four non-blank lines trimmed", result.Activities)
	}
	if len(result.ImageURLs) != 4 {
		t.Errorf("got %d image URLs, want one per activity", len(result.ImageURLs))
	}
	if !reflect.DeepEqual(images.prompts, wantActivities) {
		t.Errorf("image prompts = %v, want the activities themselves", images.prompts)
	}
}

func TestExpandImageFailureIsBestEffort(t *testing.T) {
	text := &fakeText{plan: samplePlan}
	images := &fakeImages{failOn: map[string]bool{"Day 2: Sunrise hike up Mount Batur": true}}
	svc := newTestService(text, images, PromptModeActivities)

	result, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(result.ImageURLs) != 3 {
		t.Errorf("got %d image URLs, want 3 (one failed render omitted)", len(result.ImageURLs))
	}
}

func TestExpandWithoutImages(t *testing.T) {
	svc := newTestService(&fakeText{plan: samplePlan}, nil, PromptModeActivities)

	result, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15")
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if len(result.ImageURLs) != 0 {
		t.Errorf("got %d image URLs with no image provider, want 0", len(result.ImageURLs))
	}
	if len(result.Activities) != 4 {
		t.Errorf("activities should still be extracted, got %d", len(result.Activities))
	}
}

func TestExpandLLMPromptMode(t *testing.T) {
	text := &fakeText{plan: samplePlan, prompts: []string{"watercolor beach", "misty volcano"}}
	images := &fakeImages{}
	svc := newTestService(text, images, PromptModeLLM)

	if _, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15"); err != nil {
		t.Fatalf("Expand: %v", err)
	}
	if !reflect.DeepEqual(images.prompts, []string{"watercolor beach", "misty volcano"}) {
		t.Errorf("image prompts = %v, want the suggested prompts", images.prompts)
	}
}

func TestExpandLLMPromptFallback(t *testing.T) {
	text := &fakeText{plan: samplePlan, promptsErr: errors.New("prompt suggestion down")}
	images := &fakeImages{}
	svc := newTestService(text, images, PromptModeLLM)

	result, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15")
	if err != nil {
		t.Fatalf("prompt suggestion failure must not abort: %v", err)
	}
	if !reflect.DeepEqual(images.prompts, result.Activities) {
		t.Errorf("image prompts = %v, want fallback to activities", images.prompts)
	}
}

func TestExpandPlanFailure(t *testing.T) {
	text := &fakeText{planErr: ai.ErrUpstream}
	svc := newTestService(text, nil, PromptModeActivities)

	_, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "2026-06-01", "2026-06-15")
	if !errors.Is(err, ai.ErrUpstream) {
		t.Errorf("error = %v, want wrapped ai.ErrUpstream", err)
	}
}

func TestExpandBadDate(t *testing.T) {
	svc := newTestService(&fakeText{plan: samplePlan}, nil, PromptModeActivities)

	_, err := svc.Expand(context.Background(), trip.Option{Destination: "Bali"}, "beach", "not-a-date", "2026-06-15")
	if !errors.Is(err, trip.ErrBadDate) {
		t.Errorf("error = %v, want trip.ErrBadDate", err)
	}
}

func TestExtractActivities(t *testing.T) {
	got := ExtractActivities("\n  one  \n\n two\nthree\nfour\nfive\n", 4)
	want := []string{"one", "two", "three", "four"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractActivities = %v, want %v", got, want)
	}

	if got := ExtractActivities("only line", 4); !reflect.DeepEqual(got, []string{"only line"}) {
		t.Errorf("short plans keep all lines, got %v", got)
	}
	if got := ExtractActivities("", 4); len(got) != 0 {
		t.Errorf("empty plan yields no activities, got %v", got)
	}
}
