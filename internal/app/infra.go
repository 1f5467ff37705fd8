package app

import (
	"context"

	"trailerhub/internal/config"
	"trailerhub/internal/db"
	"trailerhub/internal/logger"
	"trailerhub/internal/redis"
	"trailerhub/internal/session"
)

type Infra struct {
	DB       *db.DB
	Sessions session.Store
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	database, err := db.Open(ctx, "mysql", db.DSN(cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName))
	if err != nil {
		return nil, err
	}

	if err := db.RunSchemaMigration(ctx, database); err != nil {
		database.Close()
		return nil, err
	}

	logger.Info("database ready", nil)

	// Sessions live in Redis when an address is configured; the memory
	// store keeps development setups free of a Redis dependency.
	var sessions session.Store
	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			database.Close()
			return nil, err
		}
		sessions = session.NewRedisStore(redisClient.Client)
		logger.Info("redis sessions ready", nil)
	} else {
		sessions = session.NewMemoryStore()
		logger.Warn("REDIS_ADDR not set, using in-memory sessions", nil)
	}

	return &Infra{
		DB:       database,
		Sessions: sessions,
	}, nil
}
