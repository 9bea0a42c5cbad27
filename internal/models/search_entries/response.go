package models

import (
	entrymodels "io.winapps.florafauna/internal/models/entry"
)

type SearchEntriesResponse struct {
	Phase    string              `json:"phase"`
	Message  string              `json:"message,omitempty"`
	Status   string              `json:"status"`
	Category string              `json:"category"`
	Query    string              `json:"query"`
	Total    int                 `json:"total"` // size of the Local Cache
	Count    int                 `json:"count"`
	Entries  []entrymodels.Entry `json:"entries"`
}
