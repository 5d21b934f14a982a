// README: Config loader with env defaults for HTTP, upstream keys, and stores.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP struct {
		Addr string
		// APIKey guards the API group when set; empty disables auth.
		APIKey string
	}
	AI struct {
		GeminiKey string
		// OpenAIKey enables itinerary image generation; empty disables it.
		OpenAIKey string
	}
	Offers struct {
		SerpAPIKey    string
		OriginAirport string
		TimeoutSec    int
	}
	Maps struct {
		// APIKey enables attraction enrichment; empty disables it.
		APIKey string
	}
	DB struct {
		// DSN enables the upstream request log; empty disables it.
		DSN string
	}
	Redis struct {
		// Addr enables the Redis session store; empty keeps sessions in memory.
		Addr string
	}
	Session struct {
		TTLMin int
	}
	Itinerary struct {
		// PromptMode is "activities" (default) or "llm".
		PromptMode string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("TRIP_HTTP_ADDR", ":8080")
	cfg.HTTP.APIKey = os.Getenv("TRIP_API_KEY")
	cfg.AI.GeminiKey = envOrError("GEMINI_API_KEY")
	cfg.AI.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.Offers.SerpAPIKey = envOrError("SERPAPI_KEY")
	cfg.Offers.OriginAirport = envOrDefault("TRIP_ORIGIN_AIRPORT", "TLV")
	cfg.Offers.TimeoutSec = envOrDefaultInt("TRIP_UPSTREAM_TIMEOUT_SEC", 30)
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.DB.DSN = os.Getenv("TRIP_DB_DSN")
	cfg.Redis.Addr = os.Getenv("TRIP_REDIS_ADDR")
	cfg.Session.TTLMin = envOrDefaultInt("TRIP_SESSION_TTL_MIN", 60)
	cfg.Itinerary.PromptMode = envOrDefault("TRIP_IMAGE_PROMPTS", "activities")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrError(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	panic("environment variable " + key + " is required")
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
