package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	getentrymodels "io.winapps.florafauna/internal/models/get_entry"
	"io.winapps.florafauna/internal/render"
)

// GetEntry handles fetching a single entry from the Local Cache
func (h *CatalogHandler) GetEntry(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Entry ID is required"})
		return
	}

	entry, ok := h.catalog.Entry(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}

	detail := render.NewDetail(entry)
	c.JSON(http.StatusOK, getentrymodels.GetEntryResponse{
		Entry:       entry,
		TypeLabel:   detail.TypeLabel,
		Coordinates: detail.Coordinates,
		MapURL:      detail.MapURL,
	})
}
