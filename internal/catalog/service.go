// Package catalog owns the Local Cache of entries and sequences every update
// to it.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	models "io.winapps.florafauna/internal/models/entry"
	"io.winapps.florafauna/internal/remote"
	"io.winapps.florafauna/internal/settings"
)

const notConnectedMessage = "Remote store not connected. Please check your configuration."

// Dialer opens a store for a set of credentials
type Dialer func(ctx context.Context, creds settings.Credentials) (remote.Store, error)

// Options configures a Service
type Options struct {
	Table       string
	LoadTimeout time.Duration
	Dial        Dialer
	Settings    settings.Store
	// Fallback credentials are used when nothing has been saved
	Fallback settings.Credentials
	Logger   *zap.SugaredLogger
}

// Service is the single owner of the application state. Its mutex is only
// held for bookkeeping, never across a remote call.
type Service struct {
	table       string
	loadTimeout time.Duration
	dial        Dialer
	settings    settings.Store
	fallback    settings.Credentials
	aggregator  *Aggregator
	logger      *zap.SugaredLogger

	mu       sync.Mutex
	store    remote.Store
	seq      uint64
	statsSeq uint64
	state    State
	stats    Stats
}

func NewService(opts Options) *Service {
	if opts.Table == "" {
		opts.Table = "data_entries"
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop().Sugar()
	}
	return &Service{
		table:       opts.Table,
		loadTimeout: opts.LoadTimeout,
		dial:        opts.Dial,
		settings:    opts.Settings,
		fallback:    opts.Fallback.Normalize(),
		aggregator:  NewAggregator(opts.Table),
		logger:      opts.Logger,
		state: State{
			Phase:  PhaseLoading,
			Status: StatusUnconfigured,
		},
	}
}

// Start reads the saved credentials, connects, loads the cache and computes
// statistics. Missing credentials leave the service waiting for
// configuration and are not an error.
func (s *Service) Start(ctx context.Context) error {
	creds, err := s.savedCredentials(ctx)
	if errors.Is(err, settings.ErrNotFound) {
		s.logger.Infow("no remote store credentials, waiting for configuration")
		s.mu.Lock()
		s.state.Phase = PhaseConfigRequired
		s.state.Status = StatusUnconfigured
		s.mu.Unlock()
		return nil
	}
	if err != nil {
		return err
	}

	if err := s.Connect(ctx, creds); err != nil {
		// the error phase already carries the message; retry stays possible
		s.logger.Warnw("initial connection failed", "error", err)
		return nil
	}

	s.Load(ctx)
	s.RefreshStats(ctx)
	return nil
}

func (s *Service) savedCredentials(ctx context.Context) (settings.Credentials, error) {
	if s.settings != nil {
		creds, err := s.settings.Load(ctx)
		if err == nil {
			return creds, nil
		}
		if !errors.Is(err, settings.ErrNotFound) {
			return settings.Credentials{}, fmt.Errorf("failed to load settings: %w", err)
		}
	}
	if s.fallback.Validate() == nil {
		return s.fallback, nil
	}
	return settings.Credentials{}, settings.ErrNotFound
}

// Configure saves new credentials, connects with them and reloads
func (s *Service) Configure(ctx context.Context, creds settings.Credentials) error {
	creds = creds.Normalize()
	if err := creds.Validate(); err != nil {
		return err
	}

	if s.settings != nil {
		if err := s.settings.Save(ctx, creds); err != nil {
			return err
		}
	}

	if err := s.Connect(ctx, creds); err != nil {
		return err
	}

	s.Load(ctx)
	s.RefreshStats(ctx)
	return nil
}

// Connect dials and probes the store. On failure the previous connection
// is dropped and the status turns disconnected.
func (s *Service) Connect(ctx context.Context, creds settings.Credentials) error {
	if s.dial == nil {
		return errors.New("no store dialer configured")
	}

	store, err := s.dial(ctx, creds)
	if err == nil {
		if err = store.Ping(ctx, s.table); err != nil {
			store.Close()
		}
	}

	s.mu.Lock()
	old := s.store
	// loads still running against the old store must not land
	s.seq++
	if err != nil {
		s.store = nil
		s.state.Status = StatusDisconnected
		s.state.Phase = PhaseError
		s.state.Message = "Failed to connect: " + err.Error()
	} else {
		s.store = store
		s.state.Status = StatusConnected
	}
	s.mu.Unlock()

	if old != nil {
		old.Close()
	}

	if err != nil {
		s.logger.Errorw("remote store connection failed", "endpoint", creds.EndpointURL, "error", err)
		return fmt.Errorf("%w: %w", ErrConnect, err)
	}
	s.logger.Infow("connected to remote store", "endpoint", creds.EndpointURL)
	return nil
}

// Load fetches every entry newest first and replaces the cache wholesale.
// A response overtaken by a newer Load is discarded and ErrStaleLoad is
// returned; a failed load keeps the previous cache.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	store := s.store
	status := s.state.Status

	if store == nil {
		if status == StatusUnconfigured {
			s.state.Phase = PhaseConfigRequired
			s.state.Message = ""
			s.mu.Unlock()
			return ErrNotConfigured
		}
		s.state.Phase = PhaseError
		s.state.Message = notConnectedMessage
		s.mu.Unlock()
		return ErrNotConnected
	}

	s.state.Phase = PhaseLoading
	s.state.Message = ""
	s.mu.Unlock()

	if s.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.loadTimeout)
		defer cancel()
	}

	entries, err := s.fetch(ctx, store)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		s.logger.Debugw("discarding stale load", "seq", seq, "latest", s.seq)
		return ErrStaleLoad
	}

	if err != nil {
		s.state.Phase = PhaseError
		s.state.Message = "Failed to load data: " + err.Error()
		s.logger.Errorw("failed to load entries", "seq", seq, "error", err)
		return err
	}

	s.state.Cache = entries
	s.state.Phase = PhaseReady
	s.state.Message = ""
	s.state.Seq = seq
	s.state.LoadedAt = time.Now()
	s.logger.Infow("entries loaded", "seq", seq, "count", len(entries))
	return nil
}

func (s *Service) fetch(ctx context.Context, store remote.Store) ([]models.Entry, error) {
	rows, err := store.Select(ctx, remote.Query{
		Table:   s.table,
		OrderBy: []remote.Order{{Column: models.ColumnTimestamp, Descending: true}},
	})
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for i, row := range rows {
		entry, err := models.FromRow(row)
		if err != nil {
			s.logger.Warnw("skipping row", "index", i, "error", err)
			continue
		}
		if _, dup := seen[entry.ID]; dup {
			s.logger.Warnw("skipping duplicate row", "index", i, "id", entry.ID)
			continue
		}
		seen[entry.ID] = struct{}{}
		entries = append(entries, entry)
	}
	return entries, nil
}

// RefreshStats recomputes the statistics. Failures fall back to zeros and
// are only logged.
func (s *Service) RefreshStats(ctx context.Context) Stats {
	s.mu.Lock()
	s.statsSeq++
	seq := s.statsSeq
	store := s.store
	s.mu.Unlock()

	var stats Stats
	if store != nil {
		computed, err := s.aggregator.Compute(ctx, store)
		if err != nil {
			s.logger.Warnw("failed to update statistics", "error", err)
		} else {
			stats = computed
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq == s.statsSeq {
		s.stats = stats
	}
	return s.stats
}

// Snapshot returns the current state
func (s *Service) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns the last computed statistics
func (s *Service) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// Entry looks id up in the Local Cache
func (s *Service) Entry(id string) (models.Entry, bool) {
	return s.Snapshot().Lookup(id)
}

// Close releases the current store connection
func (s *Service) Close() {
	s.mu.Lock()
	store := s.store
	s.store = nil
	s.mu.Unlock()
	if store != nil {
		store.Close()
	}
}
