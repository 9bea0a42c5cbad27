package models

import "time"

type GetStatusResponse struct {
	Status     string     `json:"status"` // connected, disconnected or unconfigured
	Phase      string     `json:"phase"`
	Message    string     `json:"message,omitempty"`
	EntryCount int        `json:"entryCount"`
	LoadedAt   *time.Time `json:"loadedAt,omitempty"`
}
