package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ajharbinger/lead-intent-api/internal/errors"
	"github.com/ajharbinger/lead-intent-api/internal/services"
)

// maxUploadSize bounds the CSV file itself (the request-level cap is
// enforced by middleware)
const maxUploadSize = 5 * 1024 * 1024

// UploadHandler handles CSV lead uploads and lead retrieval
type UploadHandler struct {
	leadsService services.LeadsService
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(leadsService services.LeadsService) *UploadHandler {
	return &UploadHandler{
		leadsService: leadsService,
	}
}

// UploadLeads handles POST /api/leads/upload
func (h *UploadHandler) UploadLeads(c *gin.Context) {
	file, header, err := c.Request.FormFile("csvFile")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No CSV file provided"})
		return
	}
	defer file.Close()

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File must be a CSV"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "CSV file exceeds the 5MB upload limit"})
		return
	}

	summary, err := h.leadsService.ProcessUpload(file)
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperrors.AppError
		if asAppError(err, &appErr) && appErr.Code == apperrors.ErrCodeInvalidInput {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": appErrMessage(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"batch_id":    summary.BatchID,
		"leads_count": summary.LeadsCount,
		"message":     "Leads uploaded and processed successfully",
	})
}

// GetLeads handles GET /api/leads
func (h *UploadHandler) GetLeads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    h.leadsService.GetAll(),
	})
}

// appErrMessage strips the code prefix from AppError strings for response
// bodies; callers only need the human-readable message.
func appErrMessage(err error) string {
	var appErr *apperrors.AppError
	if asAppError(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
