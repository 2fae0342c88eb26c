package scoring

import (
	"reflect"
	"testing"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

func completeLead() *models.Lead {
	return &models.Lead{
		Name:        "Ava Chen",
		Role:        "CEO",
		Company:     "FlowMetrics",
		Industry:    "Software",
		Location:    "Austin, TX",
		LinkedInBio: "Building automation tooling for ops teams.",
	}
}

func TestCheckCompleteness_CompleteLead(t *testing.T) {
	result := CheckCompleteness(completeLead())
	if result.Score != CompletenessScore {
		t.Errorf("score = %d, want %d", result.Score, CompletenessScore)
	}
	if result.Reasoning != "Lead data is complete." {
		t.Errorf("unexpected reasoning: %q", result.Reasoning)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("missing fields = %v, want empty", result.MissingFields)
	}
	if result.Percentage() != 100 {
		t.Errorf("percentage = %d, want 100", result.Percentage())
	}
}

func TestCheckCompleteness_MissingFields(t *testing.T) {
	lead := completeLead()
	lead.LinkedInBio = ""
	lead.Role = "   " // blank counts as missing

	result := CheckCompleteness(lead)
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	// Missing fields reported in the declared required-field order
	if !reflect.DeepEqual(result.MissingFields, []string{"role", "linkedin_bio"}) {
		t.Errorf("missing fields = %v, want [role linkedin_bio]", result.MissingFields)
	}
	if result.Percentage() != 66 {
		t.Errorf("percentage = %d, want 66", result.Percentage())
	}
}

func TestCheckCompleteness_AllMissing(t *testing.T) {
	result := CheckCompleteness(&models.Lead{})
	if result.Score != 0 {
		t.Errorf("score = %d, want 0", result.Score)
	}
	if !reflect.DeepEqual(result.MissingFields, RequiredLeadFields) {
		t.Errorf("missing fields = %v, want all required fields in order", result.MissingFields)
	}
	if result.Percentage() != 0 {
		t.Errorf("percentage = %d, want 0", result.Percentage())
	}
}
