package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/render"
)

// EntryDetail handles the detail page of a single cached entry
func (h *CatalogHandler) EntryDetail(c *gin.Context) {
	id := c.Param("id")
	state := h.catalog.Snapshot()

	detail, ok := render.LookupDetail(state, id)
	if !ok {
		c.HTML(http.StatusNotFound, "not_found.tmpl", render.NotFoundPage{ID: id, Status: state.Status})
		return
	}

	c.HTML(http.StatusOK, "detail.tmpl", render.DetailPage{Detail: detail, Status: state.Status})
}
