package scoring

import (
	"fmt"
	"strings"
)

// Match types produced by MatchIndustry
const (
	MatchExact    = "exact"
	MatchAdjacent = "adjacent"
	MatchNone     = "no_match"
)

// Scores per match tier
const (
	ExactMatchScore    = 20
	AdjacentMatchScore = 10
	NoMatchScore       = 0
)

// industrySynonyms maps a normalized ideal-use-case string to industries
// considered adjacent to it. Lookups are keyed by the use case, not the
// lead's industry; a use case only finds its synonym list when it equals a
// table key verbatim.
var industrySynonyms = map[string][]string{
	// Software and Technology
	"software": {
		"saas",
		"tech",
		"technology",
		"software development",
		"it services",
		"information technology",
	},
	"saas":       {"software", "software as a service", "cloud software", "tech"},
	"technology": {"tech", "software", "it", "information technology"},
	"fintech": {
		"financial technology",
		"finance",
		"banking",
		"payments",
		"financial services",
	},

	// Business Services
	"consulting": {"professional services", "business consulting", "advisory"},
	"marketing":  {"advertising", "digital marketing", "martech", "ad tech"},
	"sales":      {"business development", "revenue", "sales automation"},

	// Industries
	"healthcare":    {"health", "medical", "pharma", "pharmaceutical", "biotech"},
	"education":     {"edtech", "e-learning", "learning", "training"},
	"ecommerce":     {"e-commerce", "retail", "online retail", "marketplace"},
	"manufacturing": {"industrial", "production", "logistics", "supply chain"},
	"finance":       {"financial", "banking", "fintech", "investment"},

	// Company Types
	"b2b":        {"business to business", "enterprise", "b2b saas"},
	"enterprise": {"large enterprise", "fortune 500", "big business"},
	"startup":    {"early stage", "seed", "series a", "scale-up"},
	"mid-market": {"mid market", "middle market", "smb", "small medium business"},
}

// IndustryResult is the outcome of matching a lead's industry against an
// offer's ideal use cases.
type IndustryResult struct {
	MatchType       string   `json:"match_type"`
	Score           int      `json:"score"`
	Reasoning       string   `json:"reasoning"`
	MatchedKeywords []string `json:"matched_keywords"`
}

// MatchIndustry matches the lead's industry against the offer's ideal use
// cases. Tiers run in order across all use cases: exact substring match (20),
// synonym-table match (10), then partial word overlap (10). The first hit in
// a tier wins, so a later use case's exact match beats an earlier use case's
// partial match.
func MatchIndustry(leadIndustry string, idealUseCases []string) IndustryResult {
	normalizedIndustry := normalizeString(leadIndustry)
	normalizedUseCases := make([]string, len(idealUseCases))
	for i, useCase := range idealUseCases {
		normalizedUseCases[i] = normalizeString(useCase)
	}

	if normalizedIndustry == "" || len(normalizedUseCases) == 0 {
		return IndustryResult{
			MatchType:       MatchNone,
			Score:           NoMatchScore,
			Reasoning:       "No industry information or ideal use cases provided",
			MatchedKeywords: []string{},
		}
	}

	// Tier 1: exact substring match in either direction
	for _, useCase := range normalizedUseCases {
		if strings.Contains(normalizedIndustry, useCase) || strings.Contains(useCase, normalizedIndustry) {
			return IndustryResult{
				MatchType:       MatchExact,
				Score:           ExactMatchScore,
				Reasoning:       fmt.Sprintf("Exact industry match: %q matches %q", leadIndustry, useCase),
				MatchedKeywords: []string{useCase},
			}
		}
	}

	// Tier 2: synonym table keyed by the normalized use case
	for _, useCase := range normalizedUseCases {
		for _, synonym := range industrySynonyms[useCase] {
			if strings.Contains(normalizedIndustry, synonym) || strings.Contains(synonym, normalizedIndustry) {
				return IndustryResult{
					MatchType:       MatchAdjacent,
					Score:           AdjacentMatchScore,
					Reasoning:       fmt.Sprintf("Adjacent industry match: %q is a synonym of %q via %q", leadIndustry, useCase, synonym),
					MatchedKeywords: []string{synonym},
				}
			}
		}
	}

	// Tier 3: partial word overlap, tokens longer than 2 characters only
	industryWords := significantWords(normalizedIndustry)
	for _, useCase := range normalizedUseCases {
		useCaseWords := significantWords(useCase)
		var common []string
		for _, word := range industryWords {
			for _, ucWord := range useCaseWords {
				if word == ucWord {
					common = append(common, word)
					break
				}
			}
		}
		if len(common) > 0 {
			return IndustryResult{
				MatchType:       MatchAdjacent,
				Score:           AdjacentMatchScore,
				Reasoning:       fmt.Sprintf("Partial industry match: %q shares keywords with ideal use cases", leadIndustry),
				MatchedKeywords: common,
			}
		}
	}

	return IndustryResult{
		MatchType:       MatchNone,
		Score:           NoMatchScore,
		Reasoning:       "No exact, synonym, or significant partial industry match found.",
		MatchedKeywords: []string{},
	}
}

func normalizeString(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func significantWords(text string) []string {
	var words []string
	for _, word := range strings.Fields(text) {
		if len(word) > 2 {
			words = append(words, word)
		}
	}
	return words
}
