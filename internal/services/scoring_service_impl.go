package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/repository"
	"github.com/ajharbinger/lead-intent-api/internal/scoring"
)

// Final intent thresholds on the combined 0-100 scale
const (
	highIntentThreshold   = 70
	mediumIntentThreshold = 40
)

// scoringServiceImpl implements ScoringService
type scoringServiceImpl struct {
	repos  *repository.Repositories
	ai     IntentScorer
	logger logger.Logger
}

// newScoringService creates a new scoring service implementation
func newScoringService(repos *repository.Repositories, scorer IntentScorer, log logger.Logger) ScoringService {
	return &scoringServiceImpl{
		repos:  repos,
		ai:     scorer,
		logger: log,
	}
}

// ScoreBatch scores the requested leads against the offer. Offer and lead
// resolution are preconditions: a missing offer or any missing lead ID aborts
// the whole batch before a single AI call is issued. Leads are processed
// strictly sequentially so the per-lead retry backoff bounds outbound
// concurrency to one request at a time; results come back in request order.
func (s *scoringServiceImpl) ScoreBatch(ctx context.Context, offerID string, leadIDs []string) ([]models.ScoringResult, error) {
	offer := s.repos.Offers.GetByID(offerID)
	if offer == nil {
		return nil, errors.NotFound(fmt.Sprintf("Offer with ID %s not found.", offerID), nil)
	}

	leads := s.repos.Leads.GetByIDs(leadIDs)
	if len(leads) != len(leadIDs) {
		found := make(map[string]bool, len(leads))
		for _, lead := range leads {
			found[lead.ID] = true
		}
		var missing []string
		for _, id := range leadIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return nil, errors.NotFound(fmt.Sprintf("Some leads not found: %s", strings.Join(missing, ", ")), nil)
	}

	s.logger.Info("Scoring batch started", "offer_id", offerID, "leads", len(leads))

	results := make([]models.ScoringResult, 0, len(leads))
	for i := range leads {
		lead := leads[i]

		// Rule scoring must complete first: the AI prompt is grounded in
		// the rule breakdown.
		ruleResult := scoring.CalculateRuleScore(&lead, offer)
		aiScore, aiReasoning := s.ai.ScoreWithReasoning(ctx, &lead, offer, &ruleResult)

		totalScore := ruleResult.TotalScore + aiScore
		intent := CalculateFinalIntent(totalScore)
		processedAt := time.Now().UTC()

		result := models.ScoringResult{
			ID:          uuid.New().String(),
			LeadID:      lead.ID,
			Name:        lead.Name,
			Role:        lead.Role,
			Company:     lead.Company,
			Industry:    lead.Industry,
			Location:    lead.Location,
			Intent:      intent,
			Score:       totalScore,
			RuleScore:   ruleResult.TotalScore,
			AiScore:     aiScore,
			Reasoning:   aiReasoning,
			ProcessedAt: processedAt,
		}
		results = append(results, result)
		s.repos.Results.Store(result)

		if err := s.repos.Leads.ApplyScore(lead.ID, models.LeadScoreUpdate{
			RuleScore:   ruleResult.TotalScore,
			AiScore:     aiScore,
			TotalScore:  totalScore,
			Intent:      intent,
			Reasoning:   aiReasoning,
			ProcessedAt: processedAt,
		}); err != nil {
			s.logger.Warn("Failed to write score back to lead", "lead_id", lead.ID, "error", err.Error())
		}

		s.logger.Info("Lead scored",
			"lead_id", lead.ID,
			"rule_score", ruleResult.TotalScore,
			"ai_score", aiScore,
			"intent", intent,
		)
	}

	return results, nil
}

// GetResults returns the cumulative result store plus a derived summary.
func (s *scoringServiceImpl) GetResults() ([]models.ScoringResult, models.ResultsSummary) {
	results := s.repos.Results.GetAll()

	summary := models.ResultsSummary{TotalLeads: len(results)}
	scoreSum := 0
	for _, r := range results {
		scoreSum += r.Score
		switch r.Intent {
		case "High":
			summary.HighIntent++
		case "Medium":
			summary.MediumIntent++
		case "Low":
			summary.LowIntent++
		}
	}
	if summary.TotalLeads > 0 {
		avg := float64(scoreSum) / float64(summary.TotalLeads)
		summary.AverageScore = math.Round(avg*100) / 100
	}

	return results, summary
}

// CalculateFinalIntent maps a combined score to the final tri-level intent
// label: >=70 High, >=40 Medium, else Low.
func CalculateFinalIntent(totalScore int) string {
	switch {
	case totalScore >= highIntentThreshold:
		return "High"
	case totalScore >= mediumIntentThreshold:
		return "Medium"
	default:
		return "Low"
	}
}
