package services

import (
	"context"
	"io"

	"github.com/ajharbinger/lead-intent-api/internal/ai"
	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/repository"
	"github.com/ajharbinger/lead-intent-api/internal/scoring"
	"github.com/ajharbinger/lead-intent-api/pkg/config"
)

// Services contains all application services
type Services struct {
	Offer   OfferService
	Leads   LeadsService
	Scoring ScoringService
}

// OfferService defines the interface for offer business logic
type OfferService interface {
	Create(name string, valueProps, idealUseCases []string) (*models.Offer, error)
	GetAll() []models.Offer
}

// UploadSummary reports the outcome of one CSV upload
type UploadSummary struct {
	BatchID    string `json:"batch_id"`
	LeadsCount int    `json:"leads_count"`
}

// LeadsService defines the interface for lead ingestion and retrieval
type LeadsService interface {
	ProcessUpload(csvData io.Reader) (*UploadSummary, error)
	GetAll() map[string][]models.Lead
}

// IntentScorer is the AI-side contract the scoring orchestrator depends on
type IntentScorer interface {
	ScoreWithReasoning(ctx context.Context, lead *models.Lead, offer *models.Offer, ruleScore *scoring.RuleScoreResult) (int, string)
}

// ScoringService defines the interface for the scoring pipeline
type ScoringService interface {
	ScoreBatch(ctx context.Context, offerID string, leadIDs []string) ([]models.ScoringResult, error)
	GetResults() ([]models.ScoringResult, models.ResultsSummary)
}

// NewServices creates a new Services instance with all dependencies
func NewServices(repos *repository.Repositories, cfg *config.Config, log logger.Logger) *Services {
	client := ai.NewGroqClient(cfg)
	policy := ai.DefaultRetryPolicy()
	if cfg.AIMaxRetries > 0 {
		policy.MaxAttempts = cfg.AIMaxRetries
	}
	scorer := ai.NewScorer(client, policy, log)

	return &Services{
		Offer:   newOfferService(repos, log),
		Leads:   newLeadsService(repos, log),
		Scoring: newScoringService(repos, scorer, log),
	}
}

// NewScoringService creates a standalone scoring service with an injected
// intent scorer. Used by tests to substitute the AI dependency.
func NewScoringService(repos *repository.Repositories, scorer IntentScorer, log logger.Logger) ScoringService {
	return newScoringService(repos, scorer, log)
}

// NewOfferService creates a standalone offer service
func NewOfferService(repos *repository.Repositories, log logger.Logger) OfferService {
	return newOfferService(repos, log)
}

// NewLeadsService creates a standalone leads service
func NewLeadsService(repos *repository.Repositories, log logger.Logger) LeadsService {
	return newLeadsService(repos, log)
}
