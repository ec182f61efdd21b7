package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultRateLimitPrefix = "storefront:ratelimit:"

// fixedWindowScript increments the window counter and starts its expiry on the first hit.
// Returns the count and the remaining TTL in milliseconds.
var fixedWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
    redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RateDecision is the outcome of one rate limit check
type RateDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetIn   time.Duration
}

// RedisRateLimiter is a fixed-window limiter shared by every instance using the same Redis
type RedisRateLimiter struct {
	client    *redis.Client
	limit     int
	window    time.Duration
	keyPrefix string
}

// NewRedisRateLimiter allows limit requests per key in each window
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:    client,
		limit:     limit,
		window:    window,
		keyPrefix: defaultRateLimitPrefix,
	}
}

// WithKeyPrefix replaces the namespace used for counter keys
func (l *RedisRateLimiter) WithKeyPrefix(prefix string) *RedisRateLimiter {
	l.keyPrefix = prefix
	return l
}

// Allow counts one request for key
func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (RateDecision, error) {
	res, err := fixedWindowScript.Run(ctx, l.client, []string{l.keyPrefix + key}, l.window.Milliseconds()).Int64Slice()
	if err != nil {
		return RateDecision{}, fmt.Errorf("rate limit check failed: %w", err)
	}
	if len(res) != 2 {
		return RateDecision{}, fmt.Errorf("rate limit script returned %d values", len(res))
	}

	count := int(res[0])
	resetIn := time.Duration(res[1]) * time.Millisecond
	if resetIn < 0 {
		resetIn = l.window
	}
	return RateDecision{
		Allowed:   count <= l.limit,
		Limit:     l.limit,
		Remaining: max(l.limit-count, 0),
		ResetIn:   resetIn,
	}, nil
}
