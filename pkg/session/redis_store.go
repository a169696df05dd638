package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKeyPrefix = "session:"

// RedisStore implements Store backed by Redis. Sessions are stored as JSON
// values with a TTL matching the session expiry, so DeleteExpired is a no-op.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a Redis-backed session store.
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: defaultRedisKeyPrefix,
	}
}

// Create stores a new session.
func (r *RedisStore) Create(ctx context.Context, session *Session) error {
	return r.write(ctx, session, false)
}

// Get retrieves a session by token.
func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, r.prefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Join(ErrInvalidSession, err)
	}

	if session.IsExpired() {
		_ = r.client.Del(ctx, r.prefix+token).Err()
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// Update updates an existing session. Missing sessions are not recreated.
func (r *RedisStore) Update(ctx context.Context, session *Session) error {
	return r.write(ctx, session, true)
}

// Delete removes a session by token.
func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.prefix+token).Err()
}

// DeleteExpired is a no-op: Redis evicts sessions via per-key TTL.
func (r *RedisStore) DeleteExpired(ctx context.Context) error {
	return nil
}

func (r *RedisStore) write(ctx context.Context, session *Session, mustExist bool) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return errors.Join(ErrInvalidSession, err)
	}

	key := r.prefix + session.Token
	if mustExist {
		ok, err := r.client.SetXX(ctx, key, data, ttl).Result()
		if err != nil {
			return err
		}
		if !ok {
			return ErrSessionNotFound
		}
		return nil
	}

	return r.client.Set(ctx, key, data, ttl).Err()
}
