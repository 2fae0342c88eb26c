package models

import "time"

// ScoringResult is the immutable record produced for one lead in one scoring
// run. Lead fields are denormalized at scoring time so a result stays stable
// even if the lead is rescored against a different offer later.
type ScoringResult struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"leadId"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Company     string    `json:"company"`
	Industry    string    `json:"industry"`
	Location    string    `json:"location"`
	Intent      string    `json:"intent"`
	Score       int       `json:"score"`
	RuleScore   int       `json:"rule_score"`
	AiScore     int       `json:"ai_score"`
	Reasoning   string    `json:"reasoning"`
	ProcessedAt time.Time `json:"processed_at"`
}

// ResultsSummary aggregates stored scoring results for the results endpoint.
type ResultsSummary struct {
	TotalLeads   int     `json:"total_leads"`
	HighIntent   int     `json:"high_intent"`
	MediumIntent int     `json:"medium_intent"`
	LowIntent    int     `json:"low_intent"`
	AverageScore float64 `json:"average_score"`
}
