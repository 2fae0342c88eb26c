package ai

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// mockCompletionClient scripts completion responses per call
type mockCompletionClient struct {
	responses []string
	errs      []error
	calls     int
}

func (m *mockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	idx := m.calls
	m.calls++
	if idx < len(m.errs) && m.errs[idx] != nil {
		return "", m.errs[idx]
	}
	if idx < len(m.responses) {
		return m.responses[idx], nil
	}
	return "", errors.New("no scripted response")
}

func testLead() *models.Lead {
	return &models.Lead{
		ID:          "lead-1",
		Name:        "Ava Chen",
		Role:        "CEO",
		Company:     "FlowMetrics",
		Industry:    "Software",
		Location:    "Austin, TX",
		LinkedInBio: "Scaling outbound sales.",
	}
}

func testOffer() *models.Offer {
	return &models.Offer{
		ID:            "offer-1",
		Name:          "AI Outreach Automation",
		ValueProps:    []string{"24/7 outreach"},
		IdealUseCases: []string{"Software"},
	}
}

func newTestScorer(client CompletionClient, maxAttempts int) (*Scorer, *[]time.Duration) {
	scorer := NewScorer(client, RetryPolicy{
		MaxAttempts: maxAttempts,
		Backoff: func(attempt int) time.Duration {
			return time.Duration(attempt) * time.Second
		},
	}, logger.NewNop())

	var slept []time.Duration
	scorer.sleep = func(d time.Duration) {
		slept = append(slept, d)
	}
	return scorer, &slept
}

func TestParseAIResponse(t *testing.T) {
	cases := []struct {
		name          string
		raw           string
		wantIntent    string
		wantReasoning string
	}{
		{
			name:          "plain format",
			raw:           "INTENT: High\nREASONING: Strong role authority.",
			wantIntent:    "high",
			wantReasoning: "Strong role authority.",
		},
		{
			name:          "bracketed intent",
			raw:           "INTENT: [High]\nREASONING: CEO at tech company.",
			wantIntent:    "high",
			wantReasoning: "CEO at tech company.",
		},
		{
			name:          "lowercase labels",
			raw:           "intent: medium\nreasoning: some influence.",
			wantIntent:    "medium",
			wantReasoning: "some influence.",
		},
		{
			name:          "unparseable",
			raw:           "The prospect seems interested.",
			wantIntent:    IntentUnknown,
			wantReasoning: fallbackReasoning,
		},
		{
			name:          "intent only",
			raw:           "INTENT: Low",
			wantIntent:    "low",
			wantReasoning: fallbackReasoning,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			intent, reasoning := ParseAIResponse(tc.raw)
			if intent != tc.wantIntent {
				t.Errorf("intent = %q, want %q", intent, tc.wantIntent)
			}
			if !strings.Contains(reasoning, tc.wantReasoning) {
				t.Errorf("reasoning = %q, want it to contain %q", reasoning, tc.wantReasoning)
			}
		})
	}
}

func TestConvertIntentToScore_TotalFunction(t *testing.T) {
	cases := map[string]int{
		"high":      50,
		"High":      50,
		"HIGH":      50,
		"medium":    30,
		"Medium":    30,
		"low":       10,
		"unknown":   0,
		"error":     0,
		"":          0,
		"gibberish": 0,
	}
	for intent, want := range cases {
		if got := ConvertIntentToScore(intent); got != want {
			t.Errorf("ConvertIntentToScore(%q) = %d, want %d", intent, got, want)
		}
	}
}

func TestAnalyze_Success(t *testing.T) {
	client := &mockCompletionClient{
		responses: []string{"INTENT: High\nREASONING: CEO with explicit pain point alignment."},
	}
	scorer, slept := newTestScorer(client, 3)

	result := scorer.Analyze(context.Background(), testLead(), testOffer(), nil)
	if result.Score != 50 || result.Intent != IntentHigh {
		t.Errorf("got score=%d intent=%s, want 50/high", result.Score, result.Intent)
	}
	if !strings.Contains(result.Reasoning, "pain point alignment") {
		t.Errorf("reasoning = %q", result.Reasoning)
	}
	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1", client.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %v, want no backoff on first-attempt success", *slept)
	}
}

func TestAnalyze_RetriesWithLinearBackoff(t *testing.T) {
	client := &mockCompletionClient{
		errs:      []error{errors.New("rate limited"), errors.New("timeout"), nil},
		responses: []string{"", "", "INTENT: Medium\nREASONING: Some influence."},
	}
	scorer, slept := newTestScorer(client, 3)

	result := scorer.Analyze(context.Background(), testLead(), testOffer(), nil)
	if result.Score != 30 || result.Intent != IntentMedium {
		t.Errorf("got score=%d intent=%s, want 30/medium", result.Score, result.Intent)
	}
	if client.calls != 3 {
		t.Errorf("client calls = %d, want 3", client.calls)
	}
	// 1s after attempt 1, 2s after attempt 2; no sleep after success
	want := []time.Duration{time.Second, 2 * time.Second}
	if len(*slept) != len(want) || (*slept)[0] != want[0] || (*slept)[1] != want[1] {
		t.Errorf("backoff sleeps = %v, want %v", *slept, want)
	}
}

func TestAnalyze_RetryExhaustionIsIsolated(t *testing.T) {
	client := &mockCompletionClient{
		errs: []error{errors.New("boom"), errors.New("boom"), errors.New("boom")},
	}
	scorer, slept := newTestScorer(client, 3)

	result := scorer.Analyze(context.Background(), testLead(), testOffer(), nil)
	if result.Intent != IntentError {
		t.Errorf("intent = %s, want error", result.Intent)
	}
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if !strings.Contains(result.Reasoning, "boom") {
		t.Errorf("reasoning = %q, want it to carry the provider error", result.Reasoning)
	}
	if client.calls != 3 {
		t.Errorf("client calls = %d, want the full retry budget", client.calls)
	}
	// Backoff between attempts only, never after the last one
	if len(*slept) != 2 {
		t.Errorf("slept %d times, want 2", len(*slept))
	}
}

func TestScoreWithReasoning(t *testing.T) {
	client := &mockCompletionClient{
		responses: []string{"INTENT: Low\nREASONING: No purchasing authority."},
	}
	scorer, _ := newTestScorer(client, 3)

	score, reasoning := scorer.ScoreWithReasoning(context.Background(), testLead(), testOffer(), nil)
	if score != 10 {
		t.Errorf("score = %d, want 10", score)
	}
	if reasoning != "No purchasing authority." {
		t.Errorf("reasoning = %q", reasoning)
	}
}

func TestAnalyze_UnparseableResponseIsNotRetried(t *testing.T) {
	client := &mockCompletionClient{
		responses: []string{"I cannot classify this prospect."},
	}
	scorer, slept := newTestScorer(client, 3)

	result := scorer.Analyze(context.Background(), testLead(), testOffer(), nil)
	if result.Intent != IntentUnknown || result.Score != 0 {
		t.Errorf("got intent=%s score=%d, want unknown/0", result.Intent, result.Score)
	}
	if result.Reasoning != fallbackReasoning {
		t.Errorf("reasoning = %q, want fallback", result.Reasoning)
	}
	if client.calls != 1 {
		t.Errorf("client calls = %d, want 1 (parse ambiguity is not retried)", client.calls)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %v, want none", *slept)
	}
}
