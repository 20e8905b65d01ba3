package bootstrap

import (
	"context"

	"thejulge/internal/infra/kv"
	"thejulge/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var KVModule = fx.Module("kv",
	fx.Provide(
		NewRedis,
		func(rdb *redis.Client) kv.Store {
			return kv.NewRedisStore(rdb)
		},
	),
)

func NewRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	rdb, err := kv.NewRedisClient(context.Background(), cfg.Redis.URL)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	return rdb, nil
}
