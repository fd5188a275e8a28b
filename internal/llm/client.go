package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"vaidya/internal/cache"
	"vaidya/internal/intake"
)

// ErrEmptyResponse reports a completion that came back without usable
// content. Callers must treat it as a failure, never as a diagnosis.
var ErrEmptyResponse = errors.New("empty response from model")

const (
	maxAttempts = 3
	maxTokens   = 800
)

// Client wraps the chat-completion endpoint of an OpenAI-compatible
// provider (Groq by default). Responses are memoized per process on the
// exact (system, user, image, language, model) tuple, and transient
// provider errors are retried with a linearly increasing delay.
type Client struct {
	api   *openai.Client
	model string
	memo  *cache.Memo[string]

	// retryDelay is the base delay between attempts; attempt n waits n×this.
	retryDelay time.Duration
}

// New creates a Client for the given OpenAI-compatible endpoint.
func New(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		api:        openai.NewClientWithConfig(cfg),
		model:      model,
		memo:       cache.NewMemo[string](),
		retryDelay: time.Second,
	}
}

// Infer sends a two-message system+user exchange and returns the model's
// reply. When imageB64 is non-empty the user message carries the prompt
// text plus the image as an embedded base64 data URI.
func (c *Client) Infer(ctx context.Context, system, user, imageB64 string, lang intake.Language) (string, error) {
	key := inferKey(c.model, lang, system, user, imageB64)
	return c.memo.Do(key, func() (string, error) {
		return c.complete(ctx, system, user, imageB64)
	})
}

func (c *Client) complete(ctx context.Context, system, user, imageB64 string) (string, error) {
	userMsg := openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user}
	if imageB64 != "" {
		userMsg = openai.ChatCompletionMessage{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{Type: openai.ChatMessagePartTypeText, Text: user},
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL:    "data:image/jpeg;base64," + imageB64,
						Detail: openai.ImageURLDetailAuto,
					},
				},
			},
		}
	}

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			userMsg,
		},
		MaxTokens: maxTokens,
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.api.CreateChatCompletion(ctx, req)
		if err == nil {
			if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
				log.Printf("[Inference] Empty completion from model %s", c.model)
				return "", ErrEmptyResponse
			}
			return resp.Choices[0].Message.Content, nil
		}

		lastErr = err
		if !transient(err) || ctx.Err() != nil {
			log.Printf("[Inference] Permanent error from model %s: %v", c.model, err)
			return "", fmt.Errorf("chat completion failed: %w", err)
		}

		log.Printf("[Inference] Transient error (attempt %d/%d): %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			if err := sleep(ctx, time.Duration(attempt)*c.retryDelay); err != nil {
				return "", err
			}
		}
	}
	return "", fmt.Errorf("chat completion failed after %d attempts: %w", maxAttempts, lastErr)
}

// transient reports whether the provider error is worth retrying:
// rate limits, server errors, and transport-level failures.
func transient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == 429 || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 429 || reqErr.HTTPStatusCode >= 500
	}
	// Network-level failure with no HTTP status.
	return true
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func inferKey(model string, lang intake.Language, system, user, imageB64 string) string {
	h := sha256.New()
	for _, part := range []string{model, string(lang), system, user, imageB64} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
