package scoring

import (
	"fmt"
	"strings"
)

// Role categories produced by ClassifyRole
const (
	RoleDecisionMaker = "decision_maker"
	RoleInfluencer    = "influencer"
	RoleOther         = "other"
)

// Scores per role category
const (
	DecisionMakerScore = 20
	InfluencerScore    = 10
	OtherRoleScore     = 0
)

// Keywords associated with decision-maker roles. Checked strictly before the
// influencer list; any hit here short-circuits influencer classification.
var decisionMakerKeywords = []string{
	"ceo",
	"cto",
	"cfo",
	"coo",
	"chief",
	"founder",
	"co-founder",
	"president",
	"vice president",
	"vp",
	"director",
	"head of",
	"owner",
	"principal",
	"partner",
}

// Keywords associated with influencer roles.
var influencerKeywords = []string{
	"manager",
	"lead",
	"senior",
	"specialist",
	"architect",
	"consultant",
	"engineer",
}

// RoleResult is the outcome of classifying a single role string.
type RoleResult struct {
	Category        string   `json:"category"`
	Score           int      `json:"score"`
	Reasoning       string   `json:"reasoning"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// ClassifyRole classifies a free-text job title into decision_maker,
// influencer or other. Matching is substring containment on the lowercased,
// trimmed role; matched keywords are reported in keyword-table order. An
// empty or blank role classifies as other with score 0.
func ClassifyRole(role string) RoleResult {
	normalized := strings.ToLower(strings.TrimSpace(role))

	var matched []string
	for _, keyword := range decisionMakerKeywords {
		if strings.Contains(normalized, keyword) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) > 0 {
		return RoleResult{
			Category:        RoleDecisionMaker,
			Score:           DecisionMakerScore,
			Reasoning:       fmt.Sprintf("Classified as decision maker due to keywords: %s", strings.Join(matched, ", ")),
			MatchedKeywords: matched,
		}
	}

	for _, keyword := range influencerKeywords {
		if strings.Contains(normalized, keyword) {
			matched = append(matched, keyword)
		}
	}
	if len(matched) > 0 {
		return RoleResult{
			Category:        RoleInfluencer,
			Score:           InfluencerScore,
			Reasoning:       fmt.Sprintf("Classified as influencer due to keywords: %s", strings.Join(matched, ", ")),
			MatchedKeywords: matched,
		}
	}

	return RoleResult{
		Category:        RoleOther,
		Score:           OtherRoleScore,
		Reasoning:       "Classified as other, no specific keywords matched.",
		MatchedKeywords: []string{},
	}
}
