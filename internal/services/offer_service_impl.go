package services

import (
	"strings"

	"github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/models"
	"github.com/ajharbinger/lead-intent-api/internal/repository"
)

// offerServiceImpl implements OfferService
type offerServiceImpl struct {
	repos  *repository.Repositories
	logger logger.Logger
}

// newOfferService creates a new offer service implementation
func newOfferService(repos *repository.Repositories, log logger.Logger) OfferService {
	return &offerServiceImpl{
		repos:  repos,
		logger: log,
	}
}

// Create validates and stores a new offer
func (s *offerServiceImpl) Create(name string, valueProps, idealUseCases []string) (*models.Offer, error) {
	if validationErrors := ValidateOffer(name, valueProps, idealUseCases); len(validationErrors) > 0 {
		return nil, errors.ValidationError("invalid offer data", nil).
			WithDetails(strings.Join(validationErrors, "; "))
	}

	offer := s.repos.Offers.Create(name, valueProps, idealUseCases)
	s.logger.Info("Offer created", "offer_id", offer.ID, "name", offer.Name)
	return &offer, nil
}

// GetAll returns all stored offers
func (s *offerServiceImpl) GetAll() []models.Offer {
	return s.repos.Offers.GetAll()
}

// ValidateOffer checks an offer creation payload field by field and returns
// one message per violation. An empty slice means the payload is valid.
func ValidateOffer(name string, valueProps, idealUseCases []string) []string {
	var errs []string

	if strings.TrimSpace(name) == "" {
		errs = append(errs, "Offer name is required and must be a non-empty string.")
	}

	if len(valueProps) == 0 {
		errs = append(errs, "Offer value propositions are required and must be a non-empty array of strings.")
	} else if hasBlankEntry(valueProps) {
		errs = append(errs, "All offer value propositions must be non-empty strings.")
	}

	if len(idealUseCases) == 0 {
		errs = append(errs, "Offer ideal use cases are required and must be a non-empty array of strings.")
	} else if hasBlankEntry(idealUseCases) {
		errs = append(errs, "All offer ideal use cases must be non-empty strings.")
	}

	return errs
}

func hasBlankEntry(values []string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return true
		}
	}
	return false
}
