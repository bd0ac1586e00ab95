package database

import (
	"context"
	"fmt"
	"time"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/config"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres ouvre le pool de connexions PostgreSQL.
// Le pool est retourné et injecté dans les composants, pas de singleton global.
func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	logger.Success("Connected to PostgreSQL")

	return pool, nil
}
