package ratelimit

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/solvolt/heliora/internal/config"
	"go.uber.org/fx"
)

// BatchLimiter throttles batch pricing calls per distributor. Without a
// redis client it is a no-op and every call is allowed.
type BatchLimiter struct {
	bucket *TokenBucket
	rate   float64
	burst  int
}

func NewBatchLimiter(cfg config.Config, client *redis.Client) *BatchLimiter {
	return &BatchLimiter{
		bucket: NewTokenBucket(client),
		rate:   float64(cfg.BatchRateLimitPerMin) / 60.0,
		burst:  cfg.BatchRateLimitBurst,
	}
}

// Allow reports whether a batch calculation may proceed for distributorCode.
// Limiter errors fail open: throttling is best effort, pricing is not.
func (l *BatchLimiter) Allow(ctx context.Context, distributorCode string) bool {
	if l == nil || l.bucket == nil {
		return true
	}
	res, err := l.bucket.Allow(ctx, "ratelimit:batch:"+distributorCode, l.rate, l.burst)
	if err != nil {
		return true
	}
	return res.Allowed
}

var Module = fx.Module("rate.limit",
	fx.Provide(NewBatchLimiter),
)
