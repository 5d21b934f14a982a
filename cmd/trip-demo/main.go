// README: Demo runner; one live plan → choose round trip printed to stdout.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"tripplan/internal/ai"
	"tripplan/internal/modules/itinerary"
	"tripplan/internal/modules/session"
	"tripplan/internal/modules/trip"
	"tripplan/internal/obs"
	"tripplan/internal/offers"
)

func main() {
	geminiKey := os.Getenv("GEMINI_API_KEY")
	serpKey := os.Getenv("SERPAPI_KEY")
	if geminiKey == "" || serpKey == "" {
		log.Fatal("GEMINI_API_KEY and SERPAPI_KEY environment variables must be set")
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	metrics := obs.NewMetrics()

	gemini, err := ai.NewGeminiProvider(ctx, geminiKey, nil)
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer gemini.Close()

	offersClient := offers.NewClient(serpKey, offers.DefaultBaseURL, 30*time.Second, logger, nil)

	var images ai.ImageProvider
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		images = ai.NewOpenAIImageProvider(openAIKey, nil)
	}

	planner := trip.NewService(gemini, offersClient, "TLV", logger, metrics)
	sessions := session.NewService(session.NewMemoryStore(), logger)
	expander := itinerary.NewService(gemini, images, nil, itinerary.PromptModeActivities, logger, metrics)

	// Plan a beach vacation six weeks out.
	start := time.Now().AddDate(0, 0, 42).Format("2006-01-02")
	end := time.Now().AddDate(0, 0, 49).Format("2006-01-02")
	budget := 3000.0

	fmt.Printf("Planning a beach vacation %s → %s with a $%.0f budget\n\n", start, end, budget)

	options, skipped, err := planner.Assemble(ctx, "beach", start, end, budget)
	if err != nil {
		log.Fatalf("Assemble failed: %v", err)
	}
	for _, s := range skipped {
		fmt.Printf("skipped %s (%s)\n", s.Destination, s.Reason)
	}
	if len(options) == 0 {
		fmt.Println("No trip options within budget.")
		return
	}

	for i, opt := range options {
		fmt.Printf("%d. %s — %s at $%.0f + %s at $%.0f = $%.0f\n",
			i+1, opt.Destination,
			opt.Flight.Airline, opt.Flight.Price,
			opt.Hotel.Name, opt.Hotel.Price,
			opt.TotalPrice)
	}

	sess, err := sessions.Record(ctx, "beach", start, end, options)
	if err != nil {
		log.Fatalf("Record failed: %v", err)
	}

	// Choose the first option and expand it.
	_, chosen, err := sessions.Resolve(ctx, sess.ID, 1)
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}

	result, err := expander.Expand(ctx, chosen, "beach", start, end)
	if err != nil {
		log.Fatalf("Expand failed: %v", err)
	}

	fmt.Printf("\nDaily plan for %s:\n%s\n", chosen.Destination, result.DailyPlan)
	for i, url := range result.ImageURLs {
		fmt.Printf("image %d: %s\n", i+1, url)
	}
}
