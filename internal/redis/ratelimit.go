package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Rate limiting keys:
// - ratelimit:{caller}:post - fixed window, per-minute message posting limit

// RateLimitConfig contains configuration for rate limiting
type RateLimitConfig struct {
	PostLimit  int           // Max posted messages per window
	PostWindow time.Duration // Posting rate limit window
}

// DefaultRateLimitConfig returns sensible defaults
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		PostLimit:  60, // 60 messages per minute
		PostWindow: 60 * time.Second,
	}
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *goredis.Client
	config RateLimitConfig
}

// RateLimitResult contains the result of a rate limit check
type RateLimitResult struct {
	Allowed   bool          // Whether the action is allowed
	Remaining int           // Remaining actions in the window
	ResetIn   time.Duration // Time until the window resets
	Limit     int           // The limit for this action
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(client *goredis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// AllowPost checks if a caller can post another message
func (r *RateLimiter) AllowPost(ctx context.Context, caller string) (*RateLimitResult, error) {
	key := fmt.Sprintf("ratelimit:%s:post", caller)
	return r.checkLimit(ctx, key, r.config.PostLimit, r.config.PostWindow)
}

// checkLimit performs the actual rate limit check using a windowed counter
func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int, window time.Duration) (*RateLimitResult, error) {
	// Lua script for atomic increment and check
	script := goredis.NewScript(`
		local key = KEYS[1]
		local limit = tonumber(ARGV[1])
		local window = tonumber(ARGV[2])

		local current = redis.call('GET', key)
		if current == false then
			current = 0
		else
			current = tonumber(current)
		end

		local ttl = redis.call('TTL', key)
		if ttl < 0 then
			ttl = window
		end

		if current < limit then
			current = redis.call('INCR', key)
			if current == 1 then
				redis.call('EXPIRE', key, window)
			end
			return {1, limit - current, ttl}
		end
		return {0, 0, ttl}
	`)

	res, err := script.Run(ctx, r.client, []string{key}, limit, int(window.Seconds())).Slice()
	if err != nil {
		return nil, err
	}
	if len(res) != 3 {
		return nil, fmt.Errorf("unexpected rate limit script result: %v", res)
	}

	allowed, _ := res[0].(int64)
	remaining, _ := res[1].(int64)
	resetIn, _ := res[2].(int64)

	return &RateLimitResult{
		Allowed:   allowed == 1,
		Remaining: int(remaining),
		ResetIn:   time.Duration(resetIn) * time.Second,
		Limit:     limit,
	}, nil
}
