package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/onyxlab/onyx/internal/config"
)

// Module wires the material cache. Without REDIS_ADDR the service runs with a
// no-op cache and every public lookup goes to the database.
var Module = fx.Provide(newMaterialCache)

type cacheParams struct {
	fx.In

	Ctx       context.Context
	Config    *config.Config
	Logger    *slog.Logger
	Lifecycle fx.Lifecycle
}

func newMaterialCache(p cacheParams) (MaterialCache, error) {
	if p.Config.RedisAddr == "" {
		return Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         p.Config.RedisAddr,
		Password:     p.Config.RedisPassword,
		DB:           p.Config.RedisDB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(p.Ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	p.Logger.Info("material cache enabled", slog.String("addr", p.Config.RedisAddr))
	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return NewRedisCache(client, p.Config.PublicCacheTTL), nil
}
