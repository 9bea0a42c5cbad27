package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"io.winapps.florafauna/internal/catalog"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recordingRefresher struct {
	mu       sync.Mutex
	loadErr  error
	loads    int
	stats    int
	deadline bool
}

func (r *recordingRefresher) Load(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loads++
	_, r.deadline = ctx.Deadline()
	return r.loadErr
}

func (r *recordingRefresher) RefreshStats(context.Context) catalog.Stats {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats++
	return catalog.Stats{TotalRecords: 3}
}

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("every now and then", &recordingRefresher{}, time.Second, nil)
	assert.Error(t, err)
}

func TestNewWithEmptySpecRegistersNothing(t *testing.T) {
	s, err := New("", &recordingRefresher{}, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Entries())
	s.Start()
	s.Stop()
}

func TestRunOnceLoadsThenRefreshesStats(t *testing.T) {
	r := &recordingRefresher{}
	s, err := New("@every 1h", r, time.Second, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Entries())

	s.RunOnce(context.Background())
	assert.Equal(t, 1, r.loads)
	assert.Equal(t, 1, r.stats)
	assert.True(t, r.deadline)
}

func TestRunOnceRefreshesStatsAfterFailedLoad(t *testing.T) {
	r := &recordingRefresher{loadErr: errors.New("boom")}
	s, err := New("", r, 0, nil)
	require.NoError(t, err)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, r.stats)
	assert.False(t, r.deadline)
}

func TestRunOnceSkipsUnconfigured(t *testing.T) {
	r := &recordingRefresher{loadErr: catalog.ErrNotConfigured}
	s, err := New("", r, 0, nil)
	require.NoError(t, err)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, r.loads)
	assert.Equal(t, 0, r.stats)
}
