package repository

import (
	"fmt"
	"sync"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// LeadRepository is an in-memory store for leads, grouped by upload batch.
// Leads are never deleted within the process lifetime; only their scoring
// fields are mutated, by the scoring pipeline. Safe for concurrent use.
type LeadRepository struct {
	mu      sync.RWMutex
	byBatch map[string][]string
	byID    map[string]*models.Lead
	// batchOrder preserves upload order for GetAll
	batchOrder []string
}

// NewLeadRepository creates an empty lead store
func NewLeadRepository() *LeadRepository {
	return &LeadRepository{
		byBatch: make(map[string][]string),
		byID:    make(map[string]*models.Lead),
	}
}

// CreateBatch stores a batch of leads under the given batch ID
func (r *LeadRepository) CreateBatch(batchID string, leads []models.Lead) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byBatch[batchID]; !exists {
		r.batchOrder = append(r.batchOrder, batchID)
	}
	for i := range leads {
		lead := leads[i]
		r.byID[lead.ID] = &lead
		r.byBatch[batchID] = append(r.byBatch[batchID], lead.ID)
	}
}

// GetByIDs returns the leads for the requested IDs in request order. Missing
// IDs are skipped, so the caller can detect absences by comparing lengths.
func (r *LeadRepository) GetByIDs(ids []string) []models.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()

	leads := make([]models.Lead, 0, len(ids))
	for _, id := range ids {
		if lead, ok := r.byID[id]; ok {
			leads = append(leads, *lead)
		}
	}
	return leads
}

// GetAll returns all stored leads grouped by batch ID, batches in upload order
func (r *LeadRepository) GetAll() map[string][]models.Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string][]models.Lead, len(r.byBatch))
	for _, batchID := range r.batchOrder {
		ids := r.byBatch[batchID]
		leads := make([]models.Lead, 0, len(ids))
		for _, id := range ids {
			leads = append(leads, *r.byID[id])
		}
		out[batchID] = leads
	}
	return out
}

// ApplyScore writes the scoring fields onto a stored lead
func (r *LeadRepository) ApplyScore(id string, update models.LeadScoreUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("lead %s not found", id)
	}
	lead.RuleScore = update.RuleScore
	lead.AiScore = update.AiScore
	lead.TotalScore = update.TotalScore
	lead.Intent = update.Intent
	lead.Reasoning = update.Reasoning
	processedAt := update.ProcessedAt
	lead.ProcessedAt = &processedAt
	return nil
}
