package repository

import (
	"sync"

	"github.com/google/uuid"

	"github.com/ajharbinger/lead-intent-api/internal/models"
)

// OfferRepository is an append-only in-memory store for offers. Safe for
// concurrent use.
type OfferRepository struct {
	mu     sync.RWMutex
	offers []models.Offer
	byID   map[string]int
}

// NewOfferRepository creates an empty offer store
func NewOfferRepository() *OfferRepository {
	return &OfferRepository{
		byID: make(map[string]int),
	}
}

// Create stores a new offer with a generated ID and returns it
func (r *OfferRepository) Create(name string, valueProps, idealUseCases []string) models.Offer {
	r.mu.Lock()
	defer r.mu.Unlock()

	offer := models.Offer{
		ID:            uuid.New().String(),
		Name:          name,
		ValueProps:    valueProps,
		IdealUseCases: idealUseCases,
	}
	r.byID[offer.ID] = len(r.offers)
	r.offers = append(r.offers, offer)
	return offer
}

// GetByID returns the offer with the given ID, or nil if it does not exist
func (r *OfferRepository) GetByID(id string) *models.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil
	}
	offer := r.offers[idx]
	return &offer
}

// GetAll returns all stored offers in creation order
func (r *OfferRepository) GetAll() []models.Offer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Offer, len(r.offers))
	copy(out, r.offers)
	return out
}
