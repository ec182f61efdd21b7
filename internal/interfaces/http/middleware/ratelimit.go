package middleware

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether the caller identified by key may proceed
type Limiter interface {
	Allow(ctx context.Context, key string) (cache.RateDecision, error)
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryRateLimiter is a per-process token bucket limiter keyed by caller.
// It refills limit tokens per window and allows bursts of up to limit.
type MemoryRateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	every    rate.Limit
	now      func() time.Time
	stop     chan struct{}
	stopOnce sync.Once
}

// NewMemoryRateLimiter creates a limiter and starts its idle-visitor sweeper
func NewMemoryRateLimiter(limit int, window time.Duration) *MemoryRateLimiter {
	l := newMemoryRateLimiter(limit, window, time.Now)
	go l.sweep()
	return l
}

func newMemoryRateLimiter(limit int, window time.Duration, now func() time.Time) *MemoryRateLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &MemoryRateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		every:    rate.Limit(float64(limit) / window.Seconds()),
		now:      now,
		stop:     make(chan struct{}),
	}
}

// Allow takes one token for key
func (l *MemoryRateLimiter) Allow(_ context.Context, key string) (cache.RateDecision, error) {
	now := l.now()

	l.mu.Lock()
	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.every, l.limit)}
		l.visitors[key] = v
	}
	v.lastSeen = now
	allowed := v.limiter.AllowN(now, 1)
	tokens := v.limiter.TokensAt(now)
	l.mu.Unlock()

	decision := cache.RateDecision{
		Allowed:   allowed,
		Limit:     l.limit,
		Remaining: max(int(math.Floor(tokens)), 0),
	}
	if tokens < 1 {
		decision.ResetIn = time.Duration((1 - tokens) / float64(l.every) * float64(time.Second))
	}
	return decision, nil
}

// Close stops the sweeper
func (l *MemoryRateLimiter) Close() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *MemoryRateLimiter) sweep() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.prune()
		}
	}
}

// prune forgets visitors idle for longer than a window; their buckets are full again
func (l *MemoryRateLimiter) prune() {
	cutoff := l.now().Add(-l.window)
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, v := range l.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(l.visitors, key)
		}
	}
}

// RateLimit throttles requests per client IP.
// Limiter failures let the request through and are logged.
func RateLimit(limiter Limiter, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		decision, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			logger.Warn("rate limiter unavailable, allowing request",
				zap.String("client_ip", c.ClientIP()),
				zap.Error(err),
			)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.ResetIn.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(retryAfter, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Message: "Rate limit exceeded, retry later",
			})
			return
		}
		c.Next()
	}
}
