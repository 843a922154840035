package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Arielcito/rcfapp-sub002/internal/handler/middleware"
	"github.com/Arielcito/rcfapp-sub002/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRateLimiter,
	),
)

// NewRateLimiter returns nil when REDIS_ADDR is unset, which leaves the
// reservation endpoint unlimited.
func NewRateLimiter(lc fx.Lifecycle, cfg config.RedisConfig, logger *slog.Logger) *middleware.RateLimiter {
	if cfg.Addr == "" {
		logger.Info("Redisが未設定のためレート制限を無効化します")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rdb.Ping(ctx).Err(); err != nil {
				// The limiter decides per request whether to fail open.
				logger.Warn("Redisに接続できません", "addr", cfg.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return middleware.NewRateLimiter(rdb, cfg)
}
