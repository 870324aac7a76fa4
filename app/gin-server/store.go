package main

import (
	"context"
	"fmt"

	"github.com/yoockh/chatrelay/config"
	mongorepo "github.com/yoockh/chatrelay/internal/repositories/mongo"
	pgrepo "github.com/yoockh/chatrelay/internal/repositories/postgres"
	redisrepo "github.com/yoockh/chatrelay/internal/repositories/redis"
	"github.com/yoockh/chatrelay/internal/storage"
)

func openStore(ctx context.Context, cfg config.StoreConfig) (storage.Store, error) {
	switch cfg.Kind {
	case config.StoreCSV:
		return storage.NewCSVStore(cfg.CSVPath()), nil
	case config.StoreLog:
		return storage.NewLogStore(cfg.LogPath()), nil
	case config.StoreRedis:
		rdb, err := config.OpenRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("redis: %w", err)
		}
		return redisrepo.NewInteractionStream(rdb, cfg.RedisStream), nil
	case config.StorePostgres:
		db, err := config.OpenPostgres(cfg.PostgresURI)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		return pgrepo.NewInteractionRepo(db), nil
	case config.StoreMongo:
		client, err := config.OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, fmt.Errorf("mongo: %w", err)
		}
		db := client.Database(cfg.MongoDB)
		if err := config.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return mongorepo.NewInteractionRepo(db), nil
	case config.StoreGCS:
		s, err := storage.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSPrefix)
		if err != nil {
			return nil, fmt.Errorf("gcs: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown record store %q", cfg.Kind)
	}
}
