package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
	searchmodels "io.winapps.florafauna/internal/models/search_entries"
	"io.winapps.florafauna/internal/render"
)

// Index handles the grid page with its category and search filters
func (h *CatalogHandler) Index(c *gin.Context) {
	var req searchmodels.SearchEntriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logWarn(c, "ignoring malformed filter query", "error", err)
	}

	category, err := catalog.ParseCategory(req.Category)
	if err != nil {
		// the page falls back to every category instead of failing
		h.logWarn(c, "ignoring unknown category", "category", req.Category)
		category = catalog.CategoryAll
	}

	view := h.catalog.Snapshot().View(category, req.SearchQuery)
	c.HTML(http.StatusOK, "index.tmpl", render.NewPage(view, h.catalog.Stats()))
}
