package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"arbitat/internal/infra/kvstore"
	"arbitat/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStore,
		NewSessions,
	),
)

// NewSessionStore picks the session driver: Redis when an address is
// configured, otherwise the in-process store.
func NewSessionStore(lc fx.Lifecycle, cfg config.Config) (kvstore.Store, error) {
	if cfg.Session.RedisAddr == "" {
		slog.Info("session store: in-memory")
		return kvstore.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Session.RedisAddr,
		Password: cfg.Session.RedisPassword,
		DB:       cfg.Session.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("session store: redis", "addr", cfg.Session.RedisAddr)
	return kvstore.NewRedisStore(client), nil
}

func NewSessions(store kvstore.Store, cfg config.Config) *kvstore.Sessions {
	return kvstore.NewSessions(store, cfg.Session.KeyPrefix)
}
