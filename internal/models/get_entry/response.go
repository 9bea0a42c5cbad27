package models

import (
	entrymodels "io.winapps.florafauna/internal/models/entry"
)

type GetEntryResponse struct {
	entrymodels.Entry
	TypeLabel   string `json:"typeLabel"`
	Coordinates string `json:"coordinates,omitempty"`
	MapURL      string `json:"mapUrl,omitempty"`
}
