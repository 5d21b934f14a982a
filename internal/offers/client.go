package offers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"tripplan/internal/modules/requestlog"
)

// DefaultBaseURL is the SerpApi search endpoint.
const DefaultBaseURL = "https://serpapi.com/search"

// ErrUpstream marks transport or API-level failures of the offer search.
// "No results" is not an error; searches return a nil offer instead.
var ErrUpstream = errors.New("offer search request failed")

// Searcher is the offer-search contract consumed by the assembler.
type Searcher interface {
	// SearchFlights returns the minimum-priced best-flight itinerary, or
	// (nil, nil) when the engine has no flights for the route.
	SearchFlights(ctx context.Context, origin, destinationCode, dateOut, dateReturn string) (*FlightOffer, error)

	// SearchHotels returns the highest-priced property at or under maxBudget,
	// or (nil, nil) when no property qualifies. maxBudget may be zero or
	// negative; that simply means nothing can qualify.
	SearchHotels(ctx context.Context, destination, checkIn, checkOut string, maxBudget float64) (*HotelOffer, error)
}

// Client queries SerpApi's google_flights and google_hotels engines.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	rec        requestlog.Recorder
}

// NewClient creates a SerpApi client. Pass DefaultBaseURL outside of tests.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger, rec requestlog.Recorder) *Client {
	if rec == nil {
		rec = requestlog.Nop{}
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		rec:        rec,
	}
}

// getJSON performs one search request and decodes the payload into out.
func (c *Client) getJSON(ctx context.Context, operation string, params url.Values, out any) error {
	start := time.Now()
	err := c.doGetJSON(ctx, params, out)

	status := requestlog.StatusOK
	if err != nil {
		status = requestlog.StatusError
		c.logger.Warn("offer search failed", "operation", operation, "error", err)
	}
	c.rec.Record(ctx, requestlog.Entry{
		Provider:  "serpapi",
		Operation: operation,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Detail:    params.Get("engine"),
	})
	return err
}

func (c *Client) doGetJSON(ctx context.Context, params url.Values, out any) error {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	params.Set("api_key", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrUpstream, err)
	}
	return nil
}
