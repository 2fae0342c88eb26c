package scoring

import (
	"strings"
	"testing"
)

func TestClassifyRole_DecisionMakers(t *testing.T) {
	roles := []string{
		"CEO",
		"ceo",
		"  CEO  ",
		"Chief Technology Officer",
		"Co-Founder",
		"VP of Engineering",
		"Head of Growth",
		"Vice President, Sales",
		"Managing Director", // "director" beats "manager": decision-maker list is checked first
	}

	for _, role := range roles {
		result := ClassifyRole(role)
		if result.Category != RoleDecisionMaker {
			t.Errorf("ClassifyRole(%q) category = %s, want %s", role, result.Category, RoleDecisionMaker)
		}
		if result.Score != DecisionMakerScore {
			t.Errorf("ClassifyRole(%q) score = %d, want %d", role, result.Score, DecisionMakerScore)
		}
		if len(result.MatchedKeywords) == 0 {
			t.Errorf("ClassifyRole(%q) returned no matched keywords", role)
		}
	}
}

func TestClassifyRole_Influencers(t *testing.T) {
	roles := []string{
		"Marketing Manager",
		"Senior Software Specialist",
		"Solutions Architect",
		"IT Consultant",
	}

	for _, role := range roles {
		result := ClassifyRole(role)
		if result.Category != RoleInfluencer {
			t.Errorf("ClassifyRole(%q) category = %s, want %s", role, result.Category, RoleInfluencer)
		}
		if result.Score != InfluencerScore {
			t.Errorf("ClassifyRole(%q) score = %d, want %d", role, result.Score, InfluencerScore)
		}
	}
}

func TestClassifyRole_Other(t *testing.T) {
	for _, role := range []string{"Intern", "Sales Associate", "", "   "} {
		result := ClassifyRole(role)
		if result.Category != RoleOther {
			t.Errorf("ClassifyRole(%q) category = %s, want %s", role, result.Category, RoleOther)
		}
		if result.Score != 0 {
			t.Errorf("ClassifyRole(%q) score = %d, want 0", role, result.Score)
		}
	}
}

func TestClassifyRole_ReasoningListsKeywordsInTableOrder(t *testing.T) {
	// "Founder & CEO" hits both "ceo" and "founder"; table order puts ceo first
	result := ClassifyRole("Founder & CEO")
	if result.Category != RoleDecisionMaker {
		t.Fatalf("expected decision maker, got %s", result.Category)
	}
	if len(result.MatchedKeywords) != 2 || result.MatchedKeywords[0] != "ceo" || result.MatchedKeywords[1] != "founder" {
		t.Errorf("matched keywords = %v, want [ceo founder]", result.MatchedKeywords)
	}
	if !strings.Contains(result.Reasoning, "ceo, founder") {
		t.Errorf("reasoning %q does not list keywords in table order", result.Reasoning)
	}
}

func TestClassifyRole_Idempotent(t *testing.T) {
	// Reclassifying a canonical example of each returned category yields the
	// same category
	canonical := map[string]string{
		RoleDecisionMaker: "CEO",
		RoleInfluencer:    "Manager",
		RoleOther:         "Clerk",
	}
	for category, example := range canonical {
		first := ClassifyRole(example)
		if first.Category != category {
			t.Fatalf("ClassifyRole(%q) = %s, want %s", example, first.Category, category)
		}
		second := ClassifyRole(example)
		if second.Category != first.Category || second.Score != first.Score {
			t.Errorf("ClassifyRole(%q) is not idempotent: %v vs %v", example, first, second)
		}
	}
}
