package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"

	// драйвер для миграций.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/samandr77/microservices/journal/migrations"
	"github.com/samandr77/microservices/journal/pkg/config"
)

// Connect opens the pool and checks that the database answers.
func Connect(ctx context.Context, cfg config.Postgres) (*pgxpool.Pool, error) {
	dbCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.MaxConn > 0 {
		dbCfg.MaxConns = cfg.MaxConn
	}

	if cfg.MinConn > 0 && cfg.MinConn <= dbCfg.MaxConns {
		dbCfg.MinConns = cfg.MinConn
	}

	if cfg.MaxConnIdleTime > 0 {
		dbCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}

	if cfg.ConnectTimeout > 0 {
		dbCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, dbCfg)
	if err != nil {
		return nil, fmt.Errorf("create db pool: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return pool, nil
}

// Migrate applies pending migrations and returns the versions it applied.
func Migrate(ctx context.Context, dsn string) ([]int64, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return nil, fmt.Errorf("migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("up migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))

	for _, r := range results {
		applied = append(applied, r.Source.Version)
		slog.InfoContext(ctx, "migration applied",
			"version", r.Source.Version,
			"path", r.Source.Path,
			"duration", r.Duration.String(),
		)
	}

	return applied, nil
}
