package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// redisSessionStorage stores the session user as JSON under a single key.
type redisSessionStorage struct {
	client *redis.Client
	key    string
}

// NewRedisSessionStorage creates a session storage on client. prefix is
// prepended to the storage key and may be empty.
func NewRedisSessionStorage(client *redis.Client, prefix string) adapter.SessionStorage {
	return &redisSessionStorage{
		client: client,
		key:    prefix + adapter.SessionStorageKey,
	}
}

// Load returns the stored user, or nil when the key is absent.
func (s *redisSessionStorage) Load(ctx context.Context) (*entity.User, error) {
	raw, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &user, nil
}

// Save writes the user without expiry.
func (s *redisSessionStorage) Save(ctx context.Context, user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Set(ctx, s.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear deletes the key.
func (s *redisSessionStorage) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}

// Ping checks the Redis connection.
func (s *redisSessionStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
