package scoring

import (
	"fmt"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// MaxRuleScore caps the combined rule-based score. The per-dimension maxima
// (20 role + 20 industry + 10 completeness) sum to exactly this value, so
// the cap is a defensive ceiling rather than an expected branch.
const MaxRuleScore = 50

// RuleScoreBreakdown holds the per-dimension results of a rule scoring run.
// A nil dimension means rule scoring aborted before reaching it.
type RuleScoreBreakdown struct {
	Role         *RoleResult         `json:"role,omitempty"`
	Industry     *IndustryResult     `json:"industry,omitempty"`
	Completeness *CompletenessResult `json:"completeness,omitempty"`
}

// RuleScoreResult is the outcome of scoring one lead against one offer with
// the deterministic rule set.
type RuleScoreResult struct {
	TotalScore int                `json:"total_score"`
	Breakdown  RuleScoreBreakdown `json:"breakdown"`
	Logs       []string           `json:"logs"`
}

// CalculateRuleScore composes role classification, industry matching and
// completeness checking into one additive score capped at MaxRuleScore.
// Each dimension is isolated: a panic inside one sub-scorer is logged, that
// dimension contributes 0 with an error breakdown entry, and the remaining
// dimensions still execute. Invalid input returns a zero score with an error
// log and an empty breakdown; it never fails.
func CalculateRuleScore(lead *models.Lead, offer *models.Offer) RuleScoreResult {
	result := RuleScoreResult{Logs: []string{}}

	if lead == nil {
		result.Logs = append(result.Logs, "Error: Invalid lead object provided.")
		return result
	}
	if offer == nil || len(offer.IdealUseCases) == 0 {
		result.Logs = append(result.Logs, "Error: Invalid offer object or missing ideal_use_cases provided.")
		return result
	}

	// 1. Role Classification
	if err := runIsolated(func() {
		roleResult := ClassifyRole(lead.Role)
		result.TotalScore += roleResult.Score
		result.Breakdown.Role = &roleResult
		result.Logs = append(result.Logs, fmt.Sprintf("Role Scoring: %s (Score: %d)", roleResult.Reasoning, roleResult.Score))
	}); err != nil {
		result.Logs = append(result.Logs, fmt.Sprintf("Error during Role Scoring: %v. Assigning 0 score.", err))
		result.Breakdown.Role = &RoleResult{
			Category:        "error",
			Reasoning:       fmt.Sprintf("Error: %v", err),
			MatchedKeywords: []string{},
		}
	}

	// 2. Industry Matching
	if err := runIsolated(func() {
		industryResult := MatchIndustry(lead.Industry, offer.IdealUseCases)
		result.TotalScore += industryResult.Score
		result.Breakdown.Industry = &industryResult
		result.Logs = append(result.Logs, fmt.Sprintf("Industry Scoring: %s (Score: %d)", industryResult.Reasoning, industryResult.Score))
	}); err != nil {
		result.Logs = append(result.Logs, fmt.Sprintf("Error during Industry Matching: %v. Assigning 0 score.", err))
		result.Breakdown.Industry = &IndustryResult{
			MatchType:       "error",
			Reasoning:       fmt.Sprintf("Error: %v", err),
			MatchedKeywords: []string{},
		}
	}

	// 3. Data Completeness
	if err := runIsolated(func() {
		completenessResult := CheckCompleteness(lead)
		result.TotalScore += completenessResult.Score
		result.Breakdown.Completeness = &completenessResult
		result.Logs = append(result.Logs, fmt.Sprintf("Completeness Scoring: %s (Score: %d)", completenessResult.Reasoning, completenessResult.Score))
	}); err != nil {
		result.Logs = append(result.Logs, fmt.Sprintf("Error during Data Completeness Check: %v. Assigning 0 score.", err))
		result.Breakdown.Completeness = &CompletenessResult{
			Reasoning:     fmt.Sprintf("Error: %v", err),
			MissingFields: []string{},
		}
	}

	if result.TotalScore > MaxRuleScore {
		result.TotalScore = MaxRuleScore
		result.Logs = append(result.Logs, fmt.Sprintf("Total rule-based score capped at MAX_RULE_SCORE (%d).", MaxRuleScore))
	}

	return result
}

// runIsolated converts a panic in fn into an error so one failed dimension
// cannot abort the scoring run.
func runIsolated(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
