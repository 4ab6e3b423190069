package bootstrap

import (
	"context"
	"fmt"

	"mixto_gestao/internal/adapter/persistence/repository"
	"mixto_gestao/internal/config"
	"mixto_gestao/internal/infrastructure/database"
	"mixto_gestao/internal/usecase/interfaces"
)

// OpenStore returns the document store for cfg.Driver and a closer for its
// connection. The closer is nil when there is nothing to release.
func OpenStore(ctx context.Context, cfg config.StorageConfig) (interfaces.IDocumentStore, func() error, error) {
	switch cfg.Driver {
	case config.StorageMemory:
		return repository.NewMemoryDocumentStore(), nil, nil

	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := repository.NewSQLiteDocumentStore(db)
		if err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("preparing sqlite schema: %w", err)
		}
		return store, db.Close, nil

	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		store := repository.NewDynamoDocumentStore(ddb, cfg.DynamoTable)
		if err := store.EnsureTable(ctx); err != nil {
			return nil, nil, fmt.Errorf("preparing dynamodb table: %w", err)
		}
		return store, nil, nil

	case config.StorageRedis:
		rdb, err := database.NewRedisClient(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewRedisDocumentStore(rdb), rdb.Close, nil

	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg.PostgresDSN, &repository.DocumentModel{})
		if err != nil {
			return nil, nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, err
		}
		return repository.NewPostgresDocumentStore(db), sqlDB.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
