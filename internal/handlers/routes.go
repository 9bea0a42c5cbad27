package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the pages, the JSON API and the health check
func RegisterRoutes(router *gin.Engine, h *CatalogHandler) {
	router.GET("/", h.Index)
	router.GET("/entries/:id", h.EntryDetail)
	router.GET("/config", h.ShowConfig)
	router.POST("/config", h.SubmitConfig)
	router.POST("/retry", h.Retry)

	v1 := router.Group("/api/v1")
	{
		entries := v1.Group("/entries")
		{
			entries.GET("", h.SearchEntries)
			entries.GET("/:id", h.GetEntry)
			entries.POST("/reload", h.ReloadEntries)
		}

		v1.GET("/stats", h.GetStats)
		v1.GET("/stats/stream", h.StreamStats)
		v1.GET("/status", h.GetStatus)
		v1.PUT("/config", h.UpdateConfig)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
