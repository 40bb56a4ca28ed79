package repository

import (
	"context"
	"time"
)

// RateLimitStore counts requests per key inside a fixed window.
type RateLimitStore interface {
	// Take consumes one request for key. It reports whether the request
	// fits in capacity and how long until the window resets.
	Take(ctx context.Context, key string, capacity int, window time.Duration) (bool, time.Duration, error)
}
