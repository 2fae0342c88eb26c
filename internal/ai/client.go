package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/ajharbinger/lead-intent-api/pkg/config"
)

// Sampling parameters for intent analysis. A short output budget keeps the
// model on the two-line response format.
const (
	completionTemperature = 0.7
	completionMaxTokens   = 150
)

// CompletionClient is the outbound contract the scorer depends on.
type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GroqClient calls the Groq OpenAI-compatible chat completions API
type GroqClient struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	apiKey     string
	baseURL    string
	model      string
}

// chatCompletionRequest represents a chat completions request
type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionResponse represents a chat completions response
type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// NewGroqClient creates a new Groq client. Outbound calls are rate limited
// so batch scoring cannot trip provider limits.
func NewGroqClient(cfg *config.Config) *GroqClient {
	rps := cfg.AIRequestsPerSec
	if rps <= 0 {
		rps = 1
	}
	return &GroqClient{
		httpClient: &http.Client{
			Timeout: cfg.GroqTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		apiKey:  cfg.GroqAPIKey,
		baseURL: cfg.GroqBaseURL,
		model:   cfg.GroqModel,
	}
}

// Complete sends the prompt as the sole user message and returns the raw
// completion text.
func (c *GroqClient) Complete(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("groq API key is not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter wait: %w", err)
	}

	reqBody := chatCompletionRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("groq request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("failed to parse response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK {
		if completion.Error != nil {
			return "", fmt.Errorf("groq API error (status %d): %s", resp.StatusCode, completion.Error.Message)
		}
		return "", fmt.Errorf("groq API returned status %d", resp.StatusCode)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("groq response contained no choices")
	}

	return completion.Choices[0].Message.Content, nil
}
