package http

import (
	"github.com/gin-gonic/gin"

	"github.com/labelsort/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		labels := v1.Group("/labels")
		{
			labels.POST("/sort", RateLimitMiddleware(cfg.RateLimit.PerIP), handler.SortLabels)
			labels.GET("/runs/:runID/documents/:name", handler.DownloadDocument)
			labels.GET("/runs/:runID/archive.zip", handler.DownloadArchive)
		}
	}

	return router
}
