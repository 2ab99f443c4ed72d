package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DragonKeeper_Go/internal/config"
	"github.com/osse101/DragonKeeper_Go/internal/database"
	"github.com/osse101/DragonKeeper_Go/internal/database/memory"
	"github.com/osse101/DragonKeeper_Go/internal/database/postgres"
	"github.com/osse101/DragonKeeper_Go/internal/handler"
	"github.com/osse101/DragonKeeper_Go/internal/repository"
)

// Storage is the selected repository backend.
// Pool is nil for the in-memory store.
type Storage struct {
	Store repository.Store
	Pool  *pgxpool.Pool
}

// InitializeStorage opens the backend named by cfg.Storage.
// Postgres is migrated to the latest schema before use.
func InitializeStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	if cfg.Storage == config.StorageMemory {
		slog.Warn(LogMsgUsingMemoryStore)
		return &Storage{Store: memory.NewStore()}, nil
	}

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
	}
	slog.Info(LogMsgDatabaseConnected, "host", cfg.DBHost, "db", cfg.DBName)

	if err := database.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
	}
	slog.Info(LogMsgMigrationsApplied)

	return &Storage{Store: postgres.NewStore(pool), Pool: pool}, nil
}

// HealthChecker returns what /readyz should ping.
// The result is an untyped nil for the in-memory store so the handler treats it as always ready.
func (s *Storage) HealthChecker() handler.HealthChecker {
	if s.Pool == nil {
		return nil
	}
	return s.Pool
}

// Close releases the database pool, if any
func (s *Storage) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
