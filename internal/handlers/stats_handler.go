package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.winapps.florafauna/internal/catalog"
)

// GetStats handles the current statistics
func (h *CatalogHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Stats())
}

// StreamStats handles the count-up animation as server-sent events: one
// "stats" event per frame, then "done"
func (h *CatalogHandler) StreamStats(c *gin.Context) {
	frames := h.catalog.Stats().Frames(h.countUpDuration, h.countUpFrame)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	err := catalog.Animate(c.Request.Context(), frames, h.countUpFrame, func(s catalog.Stats) {
		c.SSEvent("stats", s)
		c.Writer.Flush()
	})
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			h.logError(c, err, "stats stream interrupted")
		}
		return
	}

	c.SSEvent("done", h.catalog.Stats())
	c.Writer.Flush()
}
