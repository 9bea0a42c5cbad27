package handlers

import (
	"time"

	"go.uber.org/zap"

	"io.winapps.florafauna/internal/catalog"
)

type CatalogHandler struct {
	catalog *catalog.Service
	logger  *zap.SugaredLogger

	// count-up animation for the stats stream
	countUpDuration time.Duration
	countUpFrame    time.Duration
}

// NewCatalogHandler creates the handler behind every page and API route
func NewCatalogHandler(service *catalog.Service, logger *zap.SugaredLogger) *CatalogHandler {
	return &CatalogHandler{
		catalog:         service,
		logger:          logger,
		countUpDuration: catalog.CountUpDuration,
		countUpFrame:    catalog.CountUpFrame,
	}
}
