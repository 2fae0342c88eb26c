package ai

import (
	"strings"
	"testing"

	"github.com/ajharbinger/lead-intent-api/internal/scoring"
)

func TestBuildIntentPrompt_EmbedsOfferAndLead(t *testing.T) {
	lead := testLead()
	offer := testOffer()
	ruleResult := scoring.CalculateRuleScore(lead, offer)

	prompt := BuildIntentPrompt(offer, lead, &ruleResult)

	for _, want := range []string{
		"Product: AI Outreach Automation",
		"Value Propositions: 24/7 outreach",
		"Ideal Use Cases: Software",
		"Name: Ava Chen",
		"Role: CEO",
		"LinkedIn Bio: Scaling outbound sales.",
		"Role Classification: decision_maker",
		"Industry Match: exact",
		"Profile Completeness: 100%",
		"INTENT: [High/Medium/Low]",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildIntentPrompt_BioDefaultsToNotProvided(t *testing.T) {
	lead := testLead()
	lead.LinkedInBio = ""

	prompt := BuildIntentPrompt(testOffer(), lead, nil)
	if !strings.Contains(prompt, "LinkedIn Bio: Not provided") {
		t.Error("prompt should default an empty bio to 'Not provided'")
	}
}

func TestBuildIntentPrompt_NilBreakdownFallsBack(t *testing.T) {
	prompt := BuildIntentPrompt(testOffer(), testLead(), nil)
	if !strings.Contains(prompt, "Role Classification: unknown (no analysis)") {
		t.Error("prompt should fall back to unknown role context")
	}
	if !strings.Contains(prompt, "Industry Match: unknown (no analysis)") {
		t.Error("prompt should fall back to unknown industry context")
	}
	if !strings.Contains(prompt, "Profile Completeness: 0%") {
		t.Error("prompt should fall back to 0% completeness")
	}
}

func TestBuildIntentPrompt_Deterministic(t *testing.T) {
	lead := testLead()
	offer := testOffer()
	ruleResult := scoring.CalculateRuleScore(lead, offer)

	first := BuildIntentPrompt(offer, lead, &ruleResult)
	second := BuildIntentPrompt(offer, lead, &ruleResult)
	if first != second {
		t.Error("prompt construction is not deterministic")
	}
}
