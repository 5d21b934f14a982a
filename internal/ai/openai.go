package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tripplan/internal/modules/requestlog"
)

const openAIImagesEndpoint = "https://api.openai.com/v1/images/generations"

// OpenAIImageProvider implements ImageProvider against the OpenAI images API.
type OpenAIImageProvider struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	rec        requestlog.Recorder
}

// NewOpenAIImageProvider returns a provider using the given key.
// The 60s timeout guards against stalled connections; context cancellation
// is still honoured via NewRequestWithContext.
func NewOpenAIImageProvider(apiKey string, rec requestlog.Recorder) *OpenAIImageProvider {
	if rec == nil {
		rec = requestlog.Nop{}
	}
	return &OpenAIImageProvider{
		apiKey:     apiKey,
		endpoint:   openAIImagesEndpoint,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		rec:        rec,
	}
}

type imageRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	N      int    `json:"n"`
	Size   string `json:"size"`
}

type imageResponse struct {
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// GenerateImage renders one image for the prompt and returns its URL.
func (p *OpenAIImageProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	url, err := p.generate(ctx, prompt)

	status := requestlog.StatusOK
	if err != nil {
		status = requestlog.StatusError
	}
	p.rec.Record(ctx, requestlog.Entry{
		Provider:  "openai",
		Operation: "generate_image",
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
	})
	return url, err
}

func (p *OpenAIImageProvider) generate(ctx context.Context, prompt string) (string, error) {
	reqBody, err := json.Marshal(imageRequest{
		Model:  "dall-e-3",
		Prompt: prompt,
		N:      1,
		Size:   "1024x1024",
	})
	if err != nil {
		return "", fmt.Errorf("openai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", fmt.Errorf("openai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: openai: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: openai: read response: %v", ErrUpstream, err)
	}

	var ir imageResponse
	if err := json.Unmarshal(body, &ir); err != nil {
		return "", fmt.Errorf("%w: openai: unmarshal response: %v", ErrUpstream, err)
	}
	if ir.Error != nil {
		return "", fmt.Errorf("%w: openai: api error: %s", ErrUpstream, ir.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: openai: status %d", ErrUpstream, resp.StatusCode)
	}
	if len(ir.Data) == 0 || ir.Data[0].URL == "" {
		return "", fmt.Errorf("%w: openai: empty image data", ErrUpstream)
	}
	return ir.Data[0].URL, nil
}
