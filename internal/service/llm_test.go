package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fridgechef/backend/config"
	"github.com/fridgechef/backend/internal/apperrors"
	"github.com/fridgechef/backend/internal/types"
)

func newLLMService(upstream *httptest.Server) *LLMService {
	return NewLLMService(&config.Config{
		GroqAPIKey: "test-key",
		GroqAPIURL: upstream.URL,
	}, zap.NewNop())
}

func chatReply(content string) string {
	return `{"choices":[{"message":{"content":` + jsonString(content) + `}}]}`
}

func jsonString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGenerateSuccess(t *testing.T) {
	var forwarded chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatReply("1. Pancakes\n2. Omelette")))
	}))
	defer upstream.Close()

	svc := newLLMService(upstream)
	text, err := svc.Generate(context.Background(), types.GenerateRequest{Prompt: "what can I cook"})
	require.NoError(t, err)
	assert.Equal(t, "1. Pancakes\n2. Omelette", text)

	// Defaults fill in everything the client omitted.
	assert.Equal(t, DefaultModel, forwarded.Model)
	assert.Equal(t, DefaultMaxTokens, forwarded.MaxTokens)
	assert.Equal(t, DefaultTemperature, forwarded.Temperature)
	assert.Equal(t, DefaultTopP, forwarded.TopP)
	require.Len(t, forwarded.Messages, 1)
	assert.Equal(t, "user", forwarded.Messages[0].Role)
	assert.Equal(t, "what can I cook", forwarded.Messages[0].Content)
}

func TestGenerateClientOverrides(t *testing.T) {
	var forwarded chatRequest
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&forwarded))
		w.Write([]byte(chatReply("ok")))
	}))
	defer upstream.Close()

	maxTokens := 100
	temperature := 0.2
	topP := 0.5
	svc := newLLMService(upstream)
	_, err := svc.Generate(context.Background(), types.GenerateRequest{
		Model:       "other-model",
		Prompt:      "hi",
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		TopP:        &topP,
	})
	require.NoError(t, err)
	assert.Equal(t, "other-model", forwarded.Model)
	assert.Equal(t, 100, forwarded.MaxTokens)
	assert.Equal(t, 0.2, forwarded.Temperature)
	assert.Equal(t, 0.5, forwarded.TopP)
}

func TestGenerateMissingPrompt(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called without a prompt")
	}))
	defer upstream.Close()

	svc := newLLMService(upstream)
	_, err := svc.Generate(context.Background(), types.GenerateRequest{})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "prompt")
}

func TestGenerateUpstreamError(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"rate limit reached"}}`))
	}))
	defer upstream.Close()

	svc := newLLMService(upstream)
	_, err := svc.Generate(context.Background(), types.GenerateRequest{Prompt: "hi"})
	var uerr *apperrors.UpstreamError
	require.ErrorAs(t, err, &uerr)
	// The raw provider text travels up for the client to see.
	assert.Contains(t, err.Error(), "status 429")
	assert.Contains(t, err.Error(), "rate limit reached")
}

func TestGenerateMalformedResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer upstream.Close()

	svc := newLLMService(upstream)
	_, err := svc.Generate(context.Background(), types.GenerateRequest{Prompt: "hi"})
	var uerr *apperrors.UpstreamError
	assert.ErrorAs(t, err, &uerr)
}

func TestGenerateEmptyChoices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer upstream.Close()

	svc := newLLMService(upstream)
	_, err := svc.Generate(context.Background(), types.GenerateRequest{Prompt: "hi"})
	var uerr *apperrors.UpstreamError
	assert.ErrorAs(t, err, &uerr)
}
