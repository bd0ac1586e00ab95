package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Tables du moteur de gamification : historique des badges (clé user+jour),
// snapshot du leaderboard (clé user+semaine), roster utilisateurs et
// catalogue des suggestions d'économie.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		meter_id TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS user_badges (
		user_id TEXT NOT NULL REFERENCES users(id),
		earned_date DATE NOT NULL,
		badge_type INT NOT NULL,
		daily_consumption DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (user_id, earned_date)
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		user_id TEXT NOT NULL REFERENCES users(id),
		week_start DATE NOT NULL,
		avg_daily_consumption DOUBLE PRECISION NOT NULL,
		avg_daily_emissions DOUBLE PRECISION NOT NULL,
		total_points INT NOT NULL,
		rank_position INT NOT NULL,
		estimated BOOLEAN NOT NULL DEFAULT FALSE,
		PRIMARY KEY (user_id, week_start)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leaderboard_week ON leaderboard (week_start, rank_position)`,
	`CREATE TABLE IF NOT EXISTS suggestions (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		potential_saving TEXT NOT NULL,
		difficulty TEXT NOT NULL,
		co2_reduction TEXT NOT NULL,
		tags TEXT[] NOT NULL DEFAULT '{}'
	)`,
}

// InitSchema crée les tables si elles n'existent pas
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema init failed: %w", err)
		}
	}
	return nil
}
