package ai

import (
	"fmt"
	"strings"

	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/scoring"
)

const promptTemplate = `You are an expert B2B sales analyst. Analyze this prospect's buying intent for our offer.

OFFER DETAILS:
Product: %s
Value Propositions: %s
Ideal Use Cases: %s

PROSPECT PROFILE:
Name: %s
Role: %s
Company: %s
Industry: %s
Location: %s
LinkedIn Bio: %s

RULE-BASED CONTEXT:
- Role Classification: %s (%s)
- Industry Match: %s (%s)
- Profile Completeness: %d%%

ANALYSIS TASK:
Based on the prospect's profile, role, company context, and LinkedIn bio, classify their buying intent as High, Medium, or Low. Consider:

1. **Role Relevance**: Do they have decision-making power or influence over purchasing decisions?
2. **Industry Fit**: How well does their industry align with our ideal use cases?
3. **Pain Points**: Does their bio or role suggest they face problems our product solves?
4. **Company Context**: Are they at a company size/stage that would benefit from our solution?
5. **Timing Signals**: Any indicators of growth, expansion, or current challenges?

RESPONSE FORMAT:
INTENT: [High/Medium/Low]
REASONING: [Provide 1-2 sentences explaining your classification, focusing on the most important factors that influenced your decision]

Example:
INTENT: High
REASONING: VP of Sales at a mid-market SaaS company with bio mentioning "scaling outreach efforts" - perfect role authority and explicit pain point alignment with automation solution.`

// BuildIntentPrompt renders the deterministic analysis prompt for one lead
// and offer, grounding the model with the rule-breakdown signals already
// computed. The breakdown may be nil or partially populated.
func BuildIntentPrompt(offer *models.Offer, lead *models.Lead, ruleScore *scoring.RuleScoreResult) string {
	bio := lead.LinkedInBio
	if bio == "" {
		bio = "Not provided"
	}

	roleCategory, roleReasoning := "unknown", "no analysis"
	matchType, industryReasoning := "unknown", "no analysis"
	completenessPct := 0
	if ruleScore != nil {
		if ruleScore.Breakdown.Role != nil {
			roleCategory = ruleScore.Breakdown.Role.Category
			roleReasoning = ruleScore.Breakdown.Role.Reasoning
		}
		if ruleScore.Breakdown.Industry != nil {
			matchType = ruleScore.Breakdown.Industry.MatchType
			industryReasoning = ruleScore.Breakdown.Industry.Reasoning
		}
		if ruleScore.Breakdown.Completeness != nil {
			completenessPct = ruleScore.Breakdown.Completeness.Percentage()
		}
	}

	return fmt.Sprintf(promptTemplate,
		offer.Name,
		strings.Join(offer.ValueProps, ", "),
		strings.Join(offer.IdealUseCases, ", "),
		lead.Name,
		lead.Role,
		lead.Company,
		lead.Industry,
		lead.Location,
		bio,
		roleCategory,
		roleReasoning,
		matchType,
		industryReasoning,
		completenessPct,
	)
}
