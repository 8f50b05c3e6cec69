package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/arklim/cinema-platform/internal/core/port"
)

// admitScript trims, counts and conditionally records in one round trip so
// concurrent replicas cannot both take the last slot.
var admitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
local admitted = 0
if count < limit then
  redis.call('ZADD', key, now, ARGV[4])
  admitted = 1
end
redis.call('PEXPIRE', key, window)
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
local first = -1
if #oldest > 0 then
  first = tonumber(oldest[2])
end
return {count, admitted, first}
`)

// SlidingWindowConfig defines configuration for the sliding window limiter.
type SlidingWindowConfig struct {
	KeyPrefix string
}

// RateLimitRepository keeps rate-limit attempts in Redis sorted sets scored in milliseconds.
type RateLimitRepository struct {
	client *redis.Client
	cfg    SlidingWindowConfig
}

// NewRateLimitRepository constructs a repository using the provided Redis client and config.
func NewRateLimitRepository(client *redis.Client, cfg SlidingWindowConfig) *RateLimitRepository {
	return &RateLimitRepository{client: client, cfg: cfg}
}

// Admit records an attempt at `at` unless limit attempts already sit inside the window.
func (r *RateLimitRepository) Admit(ctx context.Context, key string, limit int, window time.Duration, at time.Time) (port.WindowUsage, error) {
	if window <= 0 {
		return port.WindowUsage{}, errors.New("window must be positive")
	}
	if limit <= 0 {
		return port.WindowUsage{}, errors.New("limit must be positive")
	}

	member := fmt.Sprintf("%d-%s", at.UnixMilli(), uuid.NewString())
	values, err := admitScript.Run(ctx, r.client,
		[]string{r.key(key)},
		at.UnixMilli(), window.Milliseconds(), limit, member,
	).Int64Slice()
	if err != nil {
		return port.WindowUsage{}, fmt.Errorf("redis admit: %w", err)
	}
	if len(values) != 3 {
		return port.WindowUsage{}, fmt.Errorf("redis admit: unexpected reply %v", values)
	}

	usage := port.WindowUsage{
		Count:    int(values[0]),
		Admitted: values[1] == 1,
	}
	if values[2] >= 0 {
		usage.Oldest = time.UnixMilli(values[2])
	}
	return usage, nil
}

func (r *RateLimitRepository) key(identifier string) string {
	if r.cfg.KeyPrefix == "" {
		return identifier
	}
	return fmt.Sprintf("%s:%s", r.cfg.KeyPrefix, identifier)
}

var _ port.RateLimitStore = (*RateLimitRepository)(nil)
