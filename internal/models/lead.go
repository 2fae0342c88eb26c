package models

import "time"

// Lead represents a prospect record awaiting or having undergone scoring.
// Firmographic fields come straight from the uploaded CSV; the scoring
// fields are mutated only by the scoring pipeline.
type Lead struct {
	ID          string `json:"id"`
	BatchID     string `json:"batch_id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	LinkedInBio string `json:"linkedin_bio"`

	// Scoring fields, populated by the scoring pipeline
	RuleScore   int        `json:"rule_score"`
	AiScore     int        `json:"ai_score"`
	TotalScore  int        `json:"total_score"`
	Intent      string     `json:"intent"`
	Reasoning   string     `json:"reasoning"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

// LeadScoreUpdate carries the scoring fields applied to a lead after a
// scoring run.
type LeadScoreUpdate struct {
	RuleScore   int
	AiScore     int
	TotalScore  int
	Intent      string
	Reasoning   string
	ProcessedAt time.Time
}
