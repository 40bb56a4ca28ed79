package http

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"rent-quote/repository"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

// Limiter decides whether a client may make another request. When it
// refuses, it also returns how long the client should wait.
type Limiter interface {
	Allow(ctx context.Context, client string) (bool, time.Duration)
}

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter gives each client IP capacity requests per window. The
// bucket refills completely once the window has elapsed.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		window:      window,
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop ends the cleanup goroutine. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow consumes one token for ip. When the bucket is empty it returns
// false and the time left until the next refill.
func (r *RateLimiter) Allow(_ context.Context, ip string) (bool, time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true, 0
	}

	if now.Sub(bucket.lastRefill) >= r.window {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false, r.window - now.Sub(bucket.lastRefill)
	}

	bucket.tokens--
	return true, 0
}

// StoreRateLimiter applies the same budget through a shared store such as
// Redis. Store errors let the request through.
type StoreRateLimiter struct {
	store    repository.RateLimitStore
	capacity int
	window   time.Duration
	logger   *zap.Logger
}

func NewStoreRateLimiter(
	store repository.RateLimitStore,
	capacity int,
	window time.Duration,
	logger *zap.Logger,
) *StoreRateLimiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreRateLimiter{store: store, capacity: capacity, window: window, logger: logger}
}

func (l *StoreRateLimiter) Allow(ctx context.Context, ip string) (bool, time.Duration) {
	allowed, retryAfter, err := l.store.Take(ctx, ip, l.capacity, l.window)
	if err != nil {
		l.logger.Warn("rate limit store unavailable, allowing request",
			zap.String("ip", ip),
			zap.Error(err),
		)
		return true, 0
	}
	return allowed, retryAfter
}
