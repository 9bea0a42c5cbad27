package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	statusmodels "io.winapps.florafauna/internal/models/get_status"
)

// GetStatus handles the connection indicator
func (h *CatalogHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.statusResponse())
}

func (h *CatalogHandler) statusResponse() statusmodels.GetStatusResponse {
	state := h.catalog.Snapshot()
	resp := statusmodels.GetStatusResponse{
		Status:     string(state.Status),
		Phase:      string(state.Phase),
		Message:    state.Message,
		EntryCount: len(state.Cache),
	}
	if !state.LoadedAt.IsZero() {
		loadedAt := state.LoadedAt
		resp.LoadedAt = &loadedAt
	}
	return resp
}
