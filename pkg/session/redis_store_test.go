package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/session"
)

// fakeRedisClient stubs the commands RedisStore issues against an in-memory
// map. The embedded interface panics on anything else.
type fakeRedisClient struct {
	redis.UniversalClient

	values map[string][]byte
}

func newFakeRedisClient() *fakeRedisClient {
	return &fakeRedisClient{values: make(map[string][]byte)}
}

func (f *fakeRedisClient) Get(_ context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (f *fakeRedisClient) Set(_ context.Context, key string, value any, _ time.Duration) *redis.StatusCmd {
	f.values[key] = value.([]byte)
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedisClient) SetXX(_ context.Context, key string, value any, _ time.Duration) *redis.BoolCmd {
	if _, ok := f.values[key]; !ok {
		return redis.NewBoolResult(false, nil)
	}
	f.values[key] = value.([]byte)
	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedisClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := f.values[key]; ok {
			delete(f.values, key)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()

	t.Run("create and get round trip", func(t *testing.T) {
		client := newFakeRedisClient()
		store := session.NewRedisStore(client)

		sess := session.NewSession("token1", time.Hour)
		sess.Set("lang", "ha")
		require.NoError(t, store.Create(ctx, sess))

		_, ok := client.values["session:token1"]
		assert.True(t, ok, "sessions are keyed session:<token>")

		got, err := store.Get(ctx, "token1")
		require.NoError(t, err)
		assert.Equal(t, sess.ID, got.ID)

		lang, ok := got.GetString("lang")
		require.True(t, ok)
		assert.Equal(t, "ha", lang)
	})

	t.Run("get missing token", func(t *testing.T) {
		store := session.NewRedisStore(newFakeRedisClient())

		_, err := store.Get(ctx, "nope")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("update requires an existing session", func(t *testing.T) {
		store := session.NewRedisStore(newFakeRedisClient())

		sess := session.NewSession("token2", time.Hour)
		assert.ErrorIs(t, store.Update(ctx, sess), session.ErrSessionNotFound)
	})

	t.Run("update persists changed data", func(t *testing.T) {
		client := newFakeRedisClient()
		store := session.NewRedisStore(client)

		sess := session.NewSession("token3", time.Hour)
		require.NoError(t, store.Create(ctx, sess))

		sess.Set("lang", "en")
		require.NoError(t, store.Update(ctx, sess))

		got, err := store.Get(ctx, "token3")
		require.NoError(t, err)
		lang, ok := got.GetString("lang")
		require.True(t, ok)
		assert.Equal(t, "en", lang)
	})

	t.Run("writing an already expired session fails", func(t *testing.T) {
		store := session.NewRedisStore(newFakeRedisClient())

		sess := session.NewSession("token4", -time.Minute)
		assert.ErrorIs(t, store.Create(ctx, sess), session.ErrSessionExpired)
	})

	t.Run("expired payload is evicted on read", func(t *testing.T) {
		client := newFakeRedisClient()
		store := session.NewRedisStore(client)

		expired := &session.Session{
			ID:        uuid.New(),
			Token:     "token5",
			ExpiresAt: time.Now().Add(-time.Minute),
			CreatedAt: time.Now().Add(-time.Hour),
		}
		data, err := json.Marshal(expired)
		require.NoError(t, err)
		client.values["session:token5"] = data

		_, err = store.Get(ctx, "token5")
		assert.ErrorIs(t, err, session.ErrSessionExpired)
		assert.NotContains(t, client.values, "session:token5")
	})

	t.Run("delete removes the session", func(t *testing.T) {
		client := newFakeRedisClient()
		store := session.NewRedisStore(client)

		sess := session.NewSession("token6", time.Hour)
		require.NoError(t, store.Create(ctx, sess))
		require.NoError(t, store.Delete(ctx, "token6"))

		_, err := store.Get(ctx, "token6")
		assert.ErrorIs(t, err, session.ErrSessionNotFound)
	})

	t.Run("delete expired is a no-op", func(t *testing.T) {
		store := session.NewRedisStore(newFakeRedisClient())
		assert.NoError(t, store.DeleteExpired(ctx))
	})
}
