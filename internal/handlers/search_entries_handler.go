package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
	models "io.winapps.florafauna/internal/models/entry"
	searchmodels "io.winapps.florafauna/internal/models/search_entries"
)

// SearchEntries handles the filtered view as JSON
func (h *CatalogHandler) SearchEntries(c *gin.Context) {
	var req searchmodels.SearchEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	view := h.catalog.Snapshot().View(category, req.SearchQuery)
	resp := searchmodels.SearchEntriesResponse{
		Phase:    string(view.Phase),
		Message:  view.Message,
		Status:   string(view.Status),
		Category: string(view.Category),
		Query:    view.Query,
		Total:    view.Total,
		Count:    len(view.Entries),
		Entries:  view.Entries,
	}
	if resp.Entries == nil {
		resp.Entries = []models.Entry{}
	}

	c.JSON(http.StatusOK, resp)
}
