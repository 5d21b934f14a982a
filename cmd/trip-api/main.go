// README: Entry point; loads config, wires services, starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tripplan/internal/ai"
	"tripplan/internal/config"
	httptransport "tripplan/internal/http"
	"tripplan/internal/http/handlers"
	"tripplan/internal/infra"
	"tripplan/internal/maps"
	"tripplan/internal/modules/itinerary"
	"tripplan/internal/modules/requestlog"
	"tripplan/internal/modules/session"
	"tripplan/internal/modules/trip"
	"tripplan/internal/obs"
	"tripplan/internal/offers"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	metrics := obs.NewMetrics()

	var recorder requestlog.Recorder = requestlog.Nop{}
	if cfg.DB.DSN != "" {
		dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatalf("db init: %v", err)
		}
		defer dbPool.Close()
		recorder = requestlog.NewStore(dbPool, logger)
	}

	gemini, err := ai.NewGeminiProvider(ctx, cfg.AI.GeminiKey, recorder)
	if err != nil {
		log.Fatalf("gemini init: %v", err)
	}
	defer gemini.Close()

	var images ai.ImageProvider
	if cfg.AI.OpenAIKey != "" {
		images = ai.NewOpenAIImageProvider(cfg.AI.OpenAIKey, recorder)
	} else {
		logger.Warn("OPENAI_API_KEY not set, itinerary images disabled")
	}

	var places *maps.PlacesService
	if cfg.Maps.APIKey != "" {
		places, err = maps.NewPlacesService(cfg.Maps.APIKey)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
	}

	offersClient := offers.NewClient(
		cfg.Offers.SerpAPIKey,
		offers.DefaultBaseURL,
		time.Duration(cfg.Offers.TimeoutSec)*time.Second,
		logger,
		recorder,
	)

	var store session.Store = session.NewMemoryStore()
	if cfg.Redis.Addr != "" {
		store = session.NewRedisStore(
			infra.NewRedis(cfg.Redis.Addr),
			time.Duration(cfg.Session.TTLMin)*time.Minute,
		)
	}
	sessionSvc := session.NewService(store, logger)

	tripSvc := trip.NewService(gemini, offersClient, cfg.Offers.OriginAirport, logger, metrics)
	itinerarySvc := itinerary.NewService(gemini, images, places,
		itinerary.PromptMode(cfg.Itinerary.PromptMode), logger, metrics)

	router := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:   handlers.NewTripHandler(tripSvc, sessionSvc, itinerarySvc),
		Metrics: metrics,
		Logger:  logger,
		APIKey:  cfg.HTTP.APIKey,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
