// Package cache keeps the per-user cart snapshot: the last cart this service
// saw for a user, written after every successful load and merged back into the
// server cart after a fresh login. It is a cache, never the source of truth.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	appErrors "github.com/anishsharma/fashion-storefront-service/internal/errors"
	"github.com/anishsharma/fashion-storefront-service/internal/models"
	"github.com/redis/go-redis/v9"
)

const snapshotKeyPrefix = "cart-snapshot"

type SnapshotStore interface {
	Get(ctx context.Context, userID string) (*models.Cart, error)
	Save(ctx context.Context, userID string, cart *models.Cart) error
	Clear(ctx context.Context, userID string) error
}

type redisSnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSnapshotStore(client *redis.Client, ttl time.Duration) SnapshotStore {
	return &redisSnapshotStore{client: client, ttl: ttl}
}

func Key(userID string) string {
	return snapshotKeyPrefix + ":" + userID
}

// Get returns the cached cart for the user, or (nil, nil) when none is cached.
func (s *redisSnapshotStore) Get(ctx context.Context, userID string) (*models.Cart, error) {

	data, err := s.client.Get(ctx, Key(userID)).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, nil
		}

		return nil, appErrors.CacheError(fmt.Sprintf("failed to get cart snapshot for user %s", userID)).WithError(err)
	}

	cart := &models.Cart{}

	if err := json.Unmarshal(data, cart); err != nil {
		return nil, appErrors.CacheError(fmt.Sprintf("failed to unmarshal cart snapshot for user %s", userID)).WithError(err)
	}

	return cart, nil
}

func (s *redisSnapshotStore) Save(ctx context.Context, userID string, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return appErrors.CacheError(fmt.Sprintf("failed to marshal cart snapshot for user %s", userID)).WithError(err)
	}

	if err := s.client.Set(ctx, Key(userID), data, s.ttl).Err(); err != nil {
		return appErrors.CacheError(fmt.Sprintf("failed to save cart snapshot for user %s", userID)).WithError(err)
	}

	return nil
}

func (s *redisSnapshotStore) Clear(ctx context.Context, userID string) error {

	if err := s.client.Del(ctx, Key(userID)).Err(); err != nil {
		return appErrors.CacheError(fmt.Sprintf("failed to clear cart snapshot for user %s", userID)).WithError(err)
	}

	return nil
}
