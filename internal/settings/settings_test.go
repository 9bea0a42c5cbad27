package settings

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStoreLoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreSaveAndLoad(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	err := store.Save(ctx, Credentials{EndpointURL: "  https://project.example.co ", AccessKey: "anon-key\n"})
	require.NoError(t, err)

	assert.Equal(t, "https://project.example.co", mr.HGet(redisKey, fieldEndpointURL))

	creds, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, Credentials{EndpointURL: "https://project.example.co", AccessKey: "anon-key"}, creds)
}

func TestRedisStoreSaveRejectsIncomplete(t *testing.T) {
	store, mr := newTestStore(t)

	err := store.Save(context.Background(), Credentials{EndpointURL: "https://project.example.co", AccessKey: "   "})
	assert.ErrorIs(t, err, ErrIncomplete)
	assert.False(t, mr.Exists(redisKey))
}

func TestRedisStoreLoadPartial(t *testing.T) {
	store, mr := newTestStore(t)
	mr.HSet(redisKey, fieldEndpointURL, "https://project.example.co")

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStoreUnavailable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
