package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/scoring"
)

// Intent labels produced by the analyzer
const (
	IntentHigh    = "high"
	IntentMedium  = "medium"
	IntentLow     = "low"
	IntentUnknown = "unknown"
	IntentError   = "error"
)

var (
	intentPattern    = regexp.MustCompile(`(?i)INTENT:\s*\[?\s*(High|Medium|Low)\s*\]?`)
	reasoningPattern = regexp.MustCompile(`(?i)REASONING:\s*(.*)`)
)

// fallbackReasoning is reported when the response carries no REASONING line.
const fallbackReasoning = "No reasoning provided."

// RetryPolicy controls how completion calls are retried.
type RetryPolicy struct {
	MaxAttempts int
	Backoff     func(attempt int) time.Duration
}

// DefaultRetryPolicy waits 1s * attempt between attempts: 1s, 2s, ...
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}
}

// ScoreResult is the transient outcome of one AI analysis call.
type ScoreResult struct {
	Score     int      `json:"score"`
	Intent    string   `json:"intent"`
	Reasoning string   `json:"reasoning"`
	Logs      []string `json:"logs"`
}

// Scorer analyzes lead buying intent through a completion client.
type Scorer struct {
	client CompletionClient
	policy RetryPolicy
	sleep  func(time.Duration)
	logger logger.Logger
}

// NewScorer creates a scorer with the given client and retry policy.
func NewScorer(client CompletionClient, policy RetryPolicy, log logger.Logger) *Scorer {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy()
	}
	return &Scorer{
		client: client,
		policy: policy,
		sleep:  time.Sleep,
		logger: log,
	}
}

// Analyze runs the full AI pipeline for one lead: prompt construction, the
// retry-guarded completion call, and response parsing. Failures never
// propagate; they are encoded into the result as intent "error" with score 0
// so one degraded lead cannot abort a batch.
func (s *Scorer) Analyze(ctx context.Context, lead *models.Lead, offer *models.Offer, ruleScore *scoring.RuleScoreResult) ScoreResult {
	result := ScoreResult{
		Intent:    IntentUnknown,
		Reasoning: "AI analysis failed or not performed.",
		Logs:      []string{},
	}

	prompt := BuildIntentPrompt(offer, lead, ruleScore)
	result.Logs = append(result.Logs, "AI Prompt created.")

	raw, err := s.analyzeLeadIntent(ctx, prompt)
	if err != nil {
		s.logger.Error("AI lead scoring failed", err, "lead_id", lead.ID)
		result.Logs = append(result.Logs, fmt.Sprintf("Error during AI lead scoring: %v", err))
		result.Intent = IntentError
		result.Reasoning = fmt.Sprintf("Error: %v", err)
		result.Score = 0
		return result
	}
	result.Logs = append(result.Logs, "AI Response received.")

	intent, reasoning := ParseAIResponse(raw)
	result.Intent = intent
	result.Reasoning = reasoning
	result.Score = ConvertIntentToScore(intent)
	result.Logs = append(result.Logs, fmt.Sprintf("AI Intent: %s, AI Score: %d", intent, result.Score))

	return result
}

// ScoreWithReasoning is the error-tolerant wrapper used by the scoring
// orchestrator; it reduces Analyze to the score and reasoning pair.
func (s *Scorer) ScoreWithReasoning(ctx context.Context, lead *models.Lead, offer *models.Offer, ruleScore *scoring.RuleScoreResult) (int, string) {
	result := s.Analyze(ctx, lead, offer, ruleScore)
	return result.Score, result.Reasoning
}

// analyzeLeadIntent issues the completion call under the retry policy. The
// backoff sleeps between attempts, not after the last one; exhaustion
// surfaces the final error.
func (s *Scorer) analyzeLeadIntent(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		raw, err := s.client.Complete(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err
		s.logger.Warn("AI completion call failed",
			"attempt", attempt,
			"max_attempts", s.policy.MaxAttempts,
			"error", err.Error(),
		)
		if attempt < s.policy.MaxAttempts {
			s.sleep(s.policy.Backoff(attempt))
		}
	}
	return "", fmt.Errorf("failed to get AI intent after %d attempts: %w", s.policy.MaxAttempts, lastErr)
}

// ParseAIResponse extracts the intent token and reasoning line from the raw
// completion text. A missing intent downgrades to "unknown", a missing
// reasoning line to a fixed fallback string; neither is an error.
func ParseAIResponse(raw string) (intent, reasoning string) {
	intent = IntentUnknown
	if m := intentPattern.FindStringSubmatch(raw); m != nil {
		intent = strings.ToLower(m[1])
	}

	reasoning = fallbackReasoning
	if m := reasoningPattern.FindStringSubmatch(raw); m != nil {
		reasoning = strings.TrimSpace(m[1])
	}

	return intent, reasoning
}

// ConvertIntentToScore maps an intent label to its score. Total on any
// input: unrecognized labels (including "unknown" and "error") map to 0.
func ConvertIntentToScore(intent string) int {
	switch strings.ToLower(intent) {
	case IntentHigh:
		return 50
	case IntentMedium:
		return 30
	case IntentLow:
		return 10
	default:
		return 0
	}
}
