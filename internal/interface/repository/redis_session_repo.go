package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"depotlog-service/internal/domain/entity"
	"depotlog-service/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// RedisSessionRepository implements SessionRepository on Redis. Expiry is
// delegated to the key TTL, so a restart of the service does not log
// anyone out.
type RedisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository creates a new redis-backed session repository
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) repository.SessionRepository {
	return &RedisSessionRepository{
		client: client,
		ttl:    ttl,
	}
}

// Create stores the session under a fresh opaque token
func (r *RedisSessionRepository) Create(ctx context.Context, session *entity.Session) (string, error) {
	token := uuid.NewString()
	session.Token = token

	payload, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+token, payload, r.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token, returning entity.ErrUnauthorized for a missing or
// expired one
func (r *RedisSessionRepository) Get(ctx context.Context, token string) (*entity.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return nil, entity.ErrUnauthorized
	}
	if err != nil {
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, err
	}
	session.Token = token
	return &session, nil
}

// Delete removes the session; unknown tokens are a no-op
func (r *RedisSessionRepository) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, sessionKeyPrefix+token).Err()
}
