package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/services"
)

// ScoringHandler handles batch scoring and result retrieval
type ScoringHandler struct {
	scoringService services.ScoringService
}

// NewScoringHandler creates a new scoring handler
func NewScoringHandler(scoringService services.ScoringService) *ScoringHandler {
	return &ScoringHandler{
		scoringService: scoringService,
	}
}

// ScoreRequest represents the batch scoring payload
type ScoreRequest struct {
	OfferID string   `json:"offerId" binding:"required"`
	LeadIDs []string `json:"leadIds" binding:"required,min=1"`
}

// ScoreLeads handles POST /api/score
func (h *ScoringHandler) ScoreLeads(c *gin.Context) {
	var req ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed: " + err.Error(),
		})
		return
	}

	// IDs must be well-formed before the scoring core is invoked
	if _, err := uuid.Parse(req.OfferID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Validation failed: offerId must be a valid UUID",
		})
		return
	}
	for _, id := range req.LeadIDs {
		if _, err := uuid.Parse(id); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Validation failed: leadIds must be valid UUIDs",
			})
			return
		}
	}

	results, err := h.scoringService.ScoreBatch(c.Request.Context(), req.OfferID, req.LeadIDs)
	if err != nil {
		status := http.StatusBadRequest
		var appErr *apperrors.AppError
		if asAppError(err, &appErr) && appErr.Code == apperrors.ErrCodeNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   appErrMessage(err),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Leads scored successfully",
		"data":    gin.H{"results": results},
	})
}

// GetResults handles GET /api/results
func (h *ScoringHandler) GetResults(c *gin.Context) {
	results, summary := h.scoringService.GetResults()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Scoring results retrieved successfully",
		"data": gin.H{
			"results": results,
			"summary": summary,
		},
	})
}
