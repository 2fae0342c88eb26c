package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/repository"
)

// maxLeadsPerUpload bounds a single CSV upload
const maxLeadsPerUpload = 10000

// expectedCSVHeaders are the columns a lead CSV must carry, matched
// case-insensitively.
var expectedCSVHeaders = []string{"name", "role", "company", "industry", "location", "linkedin_bio"}

// leadsServiceImpl implements LeadsService
type leadsServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newLeadsService creates a new leads service implementation
func newLeadsService(repos *repository.Repositories, log logger.Logger) LeadsService {
	return &leadsServiceImpl{
		repos:  repos,
		logger: log,
	}
}

// ProcessUpload parses a CSV stream into leads, validates the headers, and
// stores the rows under a fresh batch ID with zeroed scoring fields.
func (s *leadsServiceImpl) ProcessUpload(csvData io.Reader) (*UploadSummary, error) {
	reader := csv.NewReader(csvData)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.InvalidInput("failed to parse CSV file", err)
	}
	if len(records) < 2 {
		return nil, errors.InvalidInput("CSV file contains no lead rows", nil)
	}

	header := records[0]
	columnIndex, missing := mapCSVHeaders(header)
	if len(missing) > 0 {
		return nil, errors.InvalidInput(
			fmt.Sprintf("Invalid CSV headers. Missing headers: %s. Expected: %s",
				strings.Join(missing, ", "), strings.Join(expectedCSVHeaders, ",")),
			nil,
		)
	}

	rows := records[1:]
	if len(rows) > maxLeadsPerUpload {
		return nil, errors.InvalidInput(
			fmt.Sprintf("Too many leads. Maximum %d allowed per upload", maxLeadsPerUpload), nil)
	}

	batchID := uuid.New().String()
	leads := make([]models.Lead, 0, len(rows))
	for _, row := range rows {
		field := func(name string) string {
			idx := columnIndex[name]
			if idx >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[idx])
		}
		leads = append(leads, models.Lead{
			ID:          uuid.New().String(),
			BatchID:     batchID,
			Name:        field("name"),
			Role:        field("role"),
			Company:     field("company"),
			Industry:    field("industry"),
			Location:    field("location"),
			LinkedInBio: field("linkedin_bio"),
			Intent:      "Low",
		})
	}

	s.repos.Leads.CreateBatch(batchID, leads)
	s.logger.Info("Leads batch stored", "batch_id", batchID, "leads_count", len(leads))

	return &UploadSummary{BatchID: batchID, LeadsCount: len(leads)}, nil
}

// GetAll returns all stored leads grouped by batch
func (s *leadsServiceImpl) GetAll() map[string][]models.Lead {
	return s.repos.Leads.GetAll()
}

// mapCSVHeaders resolves expected columns to their positions in the header
// row, case-insensitively, and reports any expected column that is absent.
func mapCSVHeaders(header []string) (map[string]int, []string) {
	positions := make(map[string]int, len(header))
	for i, col := range header {
		positions[strings.ToLower(strings.TrimSpace(col))] = i
	}

	columnIndex := make(map[string]int, len(expectedCSVHeaders))
	var missing []string
	for _, expected := range expectedCSVHeaders {
		idx, ok := positions[expected]
		if !ok {
			missing = append(missing, expected)
			continue
		}
		columnIndex[expected] = idx
	}
	return columnIndex, missing
}
