package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/services"
)

// OfferHandler handles offer creation and retrieval
type OfferHandler struct {
	offerService services.OfferService
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerService services.OfferService) *OfferHandler {
	return &OfferHandler{
		offerService: offerService,
	}
}

// CreateOfferRequest represents the offer creation payload
type CreateOfferRequest struct {
	Name          string   `json:"name"`
	ValueProps    []string `json:"value_props"`
	IdealUseCases []string `json:"ideal_use_cases"`
}

// CreateOffer handles POST /api/offer
func (h *OfferHandler) CreateOffer(c *gin.Context) {
	var req CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	if validationErrors := services.ValidateOffer(req.Name, req.ValueProps, req.IdealUseCases); len(validationErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid offer data",
			"details": validationErrors,
		})
		return
	}

	offer, err := h.offerService.Create(req.Name, req.ValueProps, req.IdealUseCases)
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if ok := asAppError(err, &appErr); ok && appErr.Code == apperrors.ErrCodeValidationError {
			status = http.StatusBadRequest
			c.JSON(status, gin.H{
				"success": false,
				"error":   "Invalid offer data",
				"details": strings.Split(appErr.Details, "; "),
			})
			return
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   "Internal server error",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"offer_id": offer.ID,
		"message":  "Offer created successfully",
		"data":     offer,
	})
}

// GetOffers handles GET /api/offer
func (h *OfferHandler) GetOffers(c *gin.Context) {
	c.JSON(http.StatusOK, h.offerService.GetAll())
}
