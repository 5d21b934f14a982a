package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripplan/internal/modules/requestlog"
)

const geminiModel = "gemini-2.0-flash"

// GeminiProvider implements Provider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
	rec    requestlog.Recorder
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string, rec requestlog.Recorder) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)

	// Suggestion lists must follow a strict line format, so keep the
	// temperature moderate rather than fully creative.
	model.SetTemperature(0.5)

	if rec == nil {
		rec = requestlog.Nop{}
	}
	return &GeminiProvider{client: client, model: model, rec: rec}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// SuggestDestinations requests five destination lines and parses them into
// candidates. An upstream failure here is fatal to the whole plan operation.
func (p *GeminiProvider) SuggestDestinations(ctx context.Context, vacationType, month string) ([]DestinationCandidate, error) {
	prompt := fmt.Sprintf(`Suggest exactly five travel destinations suitable for a %s vacation in %s.
Answer with one destination per line, each line in the exact format:
Destination Name - Nearest Airport Name (CODE)
where CODE is the airport's IATA code. No numbering, no extra text.`, vacationType, month)

	text, err := p.generate(ctx, "suggest_destinations", prompt)
	if err != nil {
		return nil, err
	}
	return ParseDestinations(text), nil
}

// CreateDailyPlan generates the day-by-day itinerary text for a chosen trip.
func (p *GeminiProvider) CreateDailyPlan(ctx context.Context, req DailyPlanRequest) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a day-by-day plan for a %s vacation in %s from %s to %s (%s).\n",
		req.VacationType, req.Destination, req.StartDate, req.EndDate, req.Month)
	b.WriteString("Write one activity or highlight per line, most important first. Keep each line short and self-contained.\n")
	if len(req.Attractions) > 0 {
		fmt.Fprintf(&b, "Where it fits, include these attractions: %s.\n", strings.Join(req.Attractions, ", "))
	}

	return p.generate(ctx, "create_daily_plan", b.String())
}

// SuggestImagePrompts asks for one vivid image-generation prompt per activity.
func (p *GeminiProvider) SuggestImagePrompts(ctx context.Context, activities []string) ([]string, error) {
	if len(activities) == 0 {
		return nil, nil
	}
	prompt := fmt.Sprintf(`For each of the following trip activities, write one short, vivid prompt
for an image generation model. Answer with one prompt per line, in the same order, no numbering:
%s`, strings.Join(activities, "\n"))

	text, err := p.generate(ctx, "suggest_image_prompts", prompt)
	if err != nil {
		return nil, err
	}

	var prompts []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		prompts = append(prompts, line)
		if len(prompts) == len(activities) {
			break
		}
	}
	return prompts, nil
}

// generate issues one content-generation request and returns the joined text parts.
func (p *GeminiProvider) generate(ctx context.Context, operation, prompt string) (string, error) {
	start := time.Now()
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		p.record(ctx, operation, requestlog.StatusError, start)
		return "", fmt.Errorf("%w: gemini %s: %v", ErrUpstream, operation, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		p.record(ctx, operation, requestlog.StatusError, start)
		return "", fmt.Errorf("%w: gemini %s: no response candidates", ErrUpstream, operation)
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			text.WriteString(string(txt))
		}
	}
	if strings.TrimSpace(text.String()) == "" {
		p.record(ctx, operation, requestlog.StatusError, start)
		return "", fmt.Errorf("%w: gemini %s: empty text parts", ErrUpstream, operation)
	}

	p.record(ctx, operation, requestlog.StatusOK, start)
	return text.String(), nil
}

func (p *GeminiProvider) record(ctx context.Context, operation, status string, start time.Time) {
	p.rec.Record(ctx, requestlog.Entry{
		Provider:  "gemini",
		Operation: operation,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
	})
}
