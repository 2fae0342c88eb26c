package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajharbinger/lead-intent-api/internal/logger"
	"github.com/ajharbinger/lead-intent-api/internal/repository"
	"github.com/ajharbinger/lead-intent-api/internal/services"
	"github.com/ajharbinger/lead-intent-api/pkg/config"
)

// SetupRoutes configures all API routes
func SetupRoutes(r *gin.Engine, cfg *config.Config, log logger.Logger) *services.Services {
	repos := repository.NewRepositories()
	svcs := services.NewServices(repos, cfg, log)

	offerHandler := NewOfferHandler(svcs.Offer)
	uploadHandler := NewUploadHandler(svcs.Leads)
	scoringHandler := NewScoringHandler(svcs.Scoring)

	api := r.Group("/api")
	{
		api.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, "Lead Qualification Backend API is running!")
		})

		// Offer endpoints
		api.POST("/offer", offerHandler.CreateOffer)
		api.GET("/offer", offerHandler.GetOffers)

		// Lead ingestion endpoints
		api.POST("/leads/upload", uploadHandler.UploadLeads)
		api.GET("/leads", uploadHandler.GetLeads)

		// Scoring endpoints
		api.POST("/score", scoringHandler.ScoreLeads)
		api.GET("/results", scoringHandler.GetResults)
	}

	return svcs
}
