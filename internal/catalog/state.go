package catalog

import (
	"time"

	models "io.winapps.florafauna/internal/models/entry"
)

// Phase is the single visible UI state
type Phase string

const (
	PhaseLoading        Phase = "loading"
	PhaseError          Phase = "error"
	PhaseEmpty          Phase = "empty"
	PhaseReady          Phase = "ready"
	PhaseConfigRequired Phase = "config_required"
)

// ConnStatus drives the connection indicator
type ConnStatus string

const (
	StatusConnected    ConnStatus = "connected"
	StatusDisconnected ConnStatus = "disconnected"
	StatusUnconfigured ConnStatus = "unconfigured"
)

// State is a snapshot of the application state. Cache is shared between
// snapshots and must not be modified.
type State struct {
	Cache []models.Entry
	// Phase is loading, error, ready or config_required; empty is only
	// decided once a filter is applied.
	Phase    Phase
	Message  string
	Seq      uint64
	LoadedAt time.Time
	Status   ConnStatus
}

// View is the filtered, render-ready slice of a State
type View struct {
	Phase    Phase
	Message  string
	Entries  []models.Entry
	Category Category
	Query    string
	Status   ConnStatus
	Total    int
}

// View applies the category and search predicates to the cache and settles
// ready versus empty.
func (s State) View(category Category, query string) View {
	v := View{
		Phase:    s.Phase,
		Message:  s.Message,
		Category: category,
		Query:    query,
		Status:   s.Status,
		Total:    len(s.Cache),
	}
	if s.Phase != PhaseReady {
		return v
	}

	v.Entries = Filter(s.Cache, category, query)
	if len(v.Entries) == 0 {
		v.Phase = PhaseEmpty
	}
	return v
}

// Lookup finds an entry in the cache by id
func (s State) Lookup(id string) (models.Entry, bool) {
	for _, e := range s.Cache {
		if e.ID == id {
			return e, true
		}
	}
	return models.Entry{}, false
}
