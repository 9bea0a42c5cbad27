package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
)

// Retry handles the retry button: reload then back to the grid, which shows
// whatever phase the reload ended in
func (h *CatalogHandler) Retry(c *gin.Context) {
	h.reload(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// ReloadEntries handles a reload through the JSON API
func (h *CatalogHandler) ReloadEntries(c *gin.Context) {
	err := h.reload(c)
	switch {
	case err == nil, errors.Is(err, catalog.ErrStaleLoad):
		// a newer load owns the state; report it
	case errors.Is(err, catalog.ErrNotConfigured):
		c.JSON(http.StatusConflict, gin.H{"error": "Remote store not configured"})
		return
	case errors.Is(err, catalog.ErrNotConnected):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": h.catalog.Snapshot().Message})
		return
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": h.catalog.Snapshot().Message})
		return
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": h.catalog.Snapshot().Message})
		return
	}

	c.JSON(http.StatusOK, h.statusResponse())
}

func (h *CatalogHandler) reload(c *gin.Context) error {
	ctx := c.Request.Context()
	err := h.catalog.Load(ctx)
	if err != nil && !errors.Is(err, catalog.ErrStaleLoad) && !errors.Is(err, catalog.ErrNotConfigured) {
		h.logError(c, err, "reload failed")
	}
	h.catalog.RefreshStats(ctx)
	return err
}
