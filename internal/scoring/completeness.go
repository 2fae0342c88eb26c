package scoring

import (
	"fmt"
	"strings"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// CompletenessScore is awarded when every required lead field is present.
const CompletenessScore = 10

// RequiredLeadFields lists the fields a lead must carry to be considered
// complete, in the order missing fields are reported.
var RequiredLeadFields = []string{"name", "role", "company", "industry", "location", "linkedin_bio"}

// CompletenessResult is the outcome of checking a lead's data completeness.
type CompletenessResult struct {
	Score         int      `json:"score"`
	Reasoning     string   `json:"reasoning"`
	MissingFields []string `json:"missing_fields"`
}

// Percentage returns the share of required fields that are present, 0-100.
func (r CompletenessResult) Percentage() int {
	present := len(RequiredLeadFields) - len(r.MissingFields)
	return present * 100 / len(RequiredLeadFields)
}

// CheckCompleteness verifies that every required lead field is present and
// non-blank. The score is binary: 10 when complete, 0 otherwise.
func CheckCompleteness(lead *models.Lead) CompletenessResult {
	fieldValues := map[string]string{
		"name":         lead.Name,
		"role":         lead.Role,
		"company":      lead.Company,
		"industry":     lead.Industry,
		"location":     lead.Location,
		"linkedin_bio": lead.LinkedInBio,
	}

	var missing []string
	for _, field := range RequiredLeadFields {
		if strings.TrimSpace(fieldValues[field]) == "" {
			missing = append(missing, field)
		}
	}

	if len(missing) == 0 {
		return CompletenessResult{
			Score:         CompletenessScore,
			Reasoning:     "Lead data is complete.",
			MissingFields: []string{},
		}
	}

	return CompletenessResult{
		Score:         0,
		Reasoning:     fmt.Sprintf("Lead data is incomplete. Missing fields: %s.", strings.Join(missing, ", ")),
		MissingFields: missing,
	}
}
