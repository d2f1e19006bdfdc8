package bootstrap

import (
	"context"
	"log/slog"

	"table-booking/internal/handler/middleware"
	"table-booking/internal/infra/ratelimit"
	"table-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
		NewRateLimiter,
	),
)

// NewRedisClient returns nil when REDIS_ADDR is unset.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	if cfg.Redis.Addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// the limiter fails open, so an unreachable Redis is not fatal
				slog.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err.Error())
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb
}

func NewRateLimiter(cfg config.Config, rdb *redis.Client) middleware.RateLimiter {
	if !cfg.RateLimit.Enabled || rdb == nil {
		return nil
	}
	return ratelimit.NewTokenBucket(rdb, cfg.RateLimit)
}
