package repository

import (
	"sync"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// ResultRepository is an append-only in-memory store for scoring results.
// Results are immutable once stored; rescoring a lead appends a new record.
// Safe for concurrent use.
type ResultRepository struct {
	mu      sync.RWMutex
	results []models.ScoringResult
}

// NewResultRepository creates an empty result store
func NewResultRepository() *ResultRepository {
	return &ResultRepository{}
}

// Store appends a scoring result
func (r *ResultRepository) Store(result models.ScoringResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
}

// GetAll returns all stored results in insertion order
func (r *ResultRepository) GetAll() []models.ScoringResult {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ScoringResult, len(r.results))
	copy(out, r.results)
	return out
}
