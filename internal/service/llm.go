package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/types"
)

// Generation defaults, applied when the client omits a parameter.
const (
	DefaultModel       = "meta-llama/llama-4-scout-17b-16e-instruct"
	DefaultMaxTokens   = 500
	DefaultTemperature = 0.7
	DefaultTopP        = 0.9
)

const (
	// upstreamTimeout bounds a single provider call. Without it a slow
	// upstream holds a request handler for the whole transport default.
	upstreamTimeout = 30 * time.Second

	// maxInFlight bounds concurrent provider calls so an upstream stall
	// cannot absorb the server's entire handler capacity.
	maxInFlight = 8
)

// LLMService is a thin proxy to the external chat-completion provider. No
// retries, no caching; a bounded timeout and an in-flight limit are the only
// additions over a raw pass-through.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
	sem    *semaphore.Weighted
	logger *zap.Logger
}

func NewLLMService(cfg *config.Config, logger *zap.Logger) *LLMService {
	return &LLMService{
		apiKey: cfg.GroqAPIKey,
		apiURL: cfg.GroqAPIURL,
		client: &http.Client{Timeout: upstreamTimeout},
		sem:    semaphore.NewWeighted(maxInFlight),
		logger: logger,
	}
}

// chatMessage is a message in the provider's chat format.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the provider's request envelope.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

// chatResponse is the subset of the provider's response envelope we read.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate forwards a prompt to the provider and returns the single message
// body from its response. Any upstream failure is surfaced as an
// UpstreamError carrying the raw provider text.
func (s *LLMService) Generate(ctx context.Context, req types.GenerateRequest) (string, error) {
	if req.Prompt == "" {
		return "", apperrors.NewValidationError().Add("prompt", "this field is required")
	}

	payload := chatRequest{
		Model:       DefaultModel,
		Messages:    []chatMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens:   DefaultMaxTokens,
		Temperature: DefaultTemperature,
		TopP:        DefaultTopP,
	}
	if req.Model != "" {
		payload.Model = req.Model
	}
	if req.MaxTokens != nil {
		payload.MaxTokens = *req.MaxTokens
	}
	if req.Temperature != nil {
		payload.Temperature = *req.Temperature
	}
	if req.TopP != nil {
		payload.TopP = *req.TopP
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return "", apperrors.Upstreamf("generation capacity unavailable: %v", err)
	}
	defer s.sem.Release(1)

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal generation request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build generation request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	start := time.Now()
	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", apperrors.Upstreamf("generation request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", apperrors.Upstreamf("failed to read generation response: %v", err)
	}

	s.logger.Debug("generation call finished",
		zap.String("model", payload.Model),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", apperrors.Upstreamf("upstream returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", apperrors.Upstreamf("malformed generation response: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", apperrors.Upstreamf("generation response contained no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
