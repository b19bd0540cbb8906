// ABOUTME: Redis key-value store using go-redis for durable panel data shared across instances
// ABOUTME: Keys are namespaced so the store can share a Redis database with other services

package redis

import (
	"context"
	"errors"
	"time"

	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/pkg/config"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every key written by the store
const KeyPrefix = "vsum:"

// Store implements the Cache interface using Redis
type Store struct {
	client *redis.Client
}

// NewStore connects to Redis and verifies the connection
func NewStore(cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Store{client: client}, nil
}

// Get retrieves a value or errors.ErrKeyNotFound
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, KeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a value; Redis treats a zero TTL as no expiration
func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.client.Set(ctx, KeyPrefix+key, value, ttl).Err()
}

// Delete removes a key; a missing key is not an error
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, KeyPrefix+key).Err()
}

// Close closes the Redis connection
func (s *Store) Close() error {
	return s.client.Close()
}
