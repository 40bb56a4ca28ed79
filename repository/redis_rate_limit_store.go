package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	pingTimeout        = 5 * time.Second
	rateLimitKeyPrefix = "ratelimit:"
)

// RedisRateLimitStore keeps rate limit windows in Redis so every API
// instance shares the same budget per client.
type RedisRateLimitStore struct {
	client *redis.Client
}

func NewRedisRateLimitStore(addr, password string) *RedisRateLimitStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return NewRedisRateLimitStoreFromClient(rdb)
}

func NewRedisRateLimitStoreFromClient(client *redis.Client) *RedisRateLimitStore {
	return &RedisRateLimitStore{client: client}
}

// Ping checks the connection so callers can fall back to the in-memory limiter.
func (s *RedisRateLimitStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Take increments the window counter; the first hit of a window sets its
// expiry.
func (s *RedisRateLimitStore) Take(
	ctx context.Context,
	key string,
	capacity int,
	window time.Duration,
) (bool, time.Duration, error) {
	redisKey := rateLimitKeyPrefix + key

	count, err := s.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, 0, err
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, err
		}
	}

	ttl, err := s.client.PTTL(ctx, redisKey).Result()
	if err != nil {
		return false, 0, err
	}
	if ttl < 0 {
		// counter lost its expiry (e.g. PExpire failed earlier); start a new window
		if err := s.client.PExpire(ctx, redisKey, window).Err(); err != nil {
			return false, 0, err
		}
		ttl = window
	}

	if count > int64(capacity) {
		return false, ttl, nil
	}
	return true, 0, nil
}

func (s *RedisRateLimitStore) Close() error {
	return s.client.Close()
}
