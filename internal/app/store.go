package app

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quantum-quiz/internal/domain/sessions/repository"
	"github.com/IT-Nick/quantum-quiz/internal/infra/config"
)

// NewSessionStore выбирает хранилище сессий по storage.type
func NewSessionStore(ctx context.Context, cfg *config.Config) (repository.Store, error) {
	switch cfg.Storage.Type {
	case config.StorageMemory:
		return repository.NewMemoryStore(), nil
	case config.StorageRedis:
		return repository.NewRedisStore(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TTL)
	case config.StorageSQLite:
		return repository.OpenSQLStore(ctx, repository.DriverSQLite, cfg.Storage.DSN)
	case config.StoragePostgres:
		dsn := cfg.Storage.DSN
		if dsn == "" && cfg.DatabaseEnabled() {
			dsn = cfg.DatabaseURL()
		}
		return repository.OpenSQLStore(ctx, repository.DriverPostgres, dsn)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}
}
