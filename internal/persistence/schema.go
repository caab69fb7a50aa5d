package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const kvSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
    key   TEXT PRIMARY KEY,
    value TEXT NOT NULL
)`

// EnsureKVSchema creates the single key-value table backing the Postgres store.
func EnsureKVSchema(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping schema setup")
		return nil
	}

	if _, err := pool.Exec(ctx, kvSchema); err != nil {
		return fmt.Errorf("ensure kv schema: %w", err)
	}

	logger.Info("kv schema ready")
	return nil
}
