package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"io.winapps.florafauna/internal/remote"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "LOAD_TIMEOUT", "REDIS_DB", "ENTRIES_TABLE", "SUPABASE_URL", "SUPABASE_ANON_KEY", "POSTGRES_MAX_CONNS", "POSTGRES_BOOTSTRAP"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9091", cfg.Port)
	assert.Equal(t, remote.DriverREST, cfg.StoreDriver)
	assert.Equal(t, "data_entries", cfg.Table)
	assert.Equal(t, 15*time.Second, cfg.LoadTimeout)
	assert.Equal(t, int32(10), cfg.Postgres.MaxConns)
	assert.False(t, cfg.Postgres.Bootstrap)
	assert.Error(t, cfg.Remote.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("LOAD_TIMEOUT", "3s")
	t.Setenv("SUPABASE_URL", "https://project.example.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("REFRESH_SCHEDULE", "")
	t.Setenv("POSTGRES_BOOTSTRAP", "true")
	t.Setenv("ENTRIES_TABLE", "observations")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, remote.DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.LoadTimeout)
	assert.NoError(t, cfg.Remote.Validate())
	assert.Empty(t, cfg.RefreshSchedule)
	assert.True(t, cfg.Postgres.Bootstrap)
	assert.Equal(t, "observations", cfg.Postgres.Table)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongodb")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STORE_DRIVER", "rest")
	t.Setenv("LOAD_TIMEOUT", "soon")
	_, err = Load()
	assert.Error(t, err)
}
