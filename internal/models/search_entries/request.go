package models

type SearchEntriesRequest struct {
	Category    string `form:"category"` // "all" (default) or an entry type
	SearchQuery string `form:"q"`
}
