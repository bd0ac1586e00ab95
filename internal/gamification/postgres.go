package gamification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/scanner"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implémente Store au-dessus de pgx
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore construit le store avec un pool injecté
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) UpsertBadge(ctx context.Context, rec model.BadgeRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO user_badges (user_id, earned_date, badge_type, daily_consumption)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, earned_date)
		DO UPDATE SET badge_type = EXCLUDED.badge_type,
		              daily_consumption = EXCLUDED.daily_consumption
	`, rec.UserID, rec.Date, rec.BadgeType, rec.DailyKWh)
	if err != nil {
		return fmt.Errorf("could not upsert badge: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetBadge(ctx context.Context, userID string, date time.Time) (*model.BadgeRecord, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT user_id, earned_date, badge_type, daily_consumption
		FROM user_badges
		WHERE user_id = $1 AND earned_date = $2
	`, userID, date)

	rec, err := scanner.ScanBadgeRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan badge: %w", err)
	}
	return rec, nil
}

func (s *PostgresStore) BadgeHistory(ctx context.Context, userID string, from, to time.Time) ([]model.BadgeRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT user_id, earned_date, badge_type, daily_consumption
		FROM user_badges
		WHERE user_id = $1 AND earned_date BETWEEN $2 AND $3
		ORDER BY earned_date DESC
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not query badge history: %w", err)
	}
	defer rows.Close()

	var records []model.BadgeRecord
	for rows.Next() {
		rec, err := scanner.ScanBadgeRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan badge row: %w", err)
		}
		records = append(records, *rec)
	}

	return records, rows.Err()
}

func (s *PostgresStore) AvgConsumption(ctx context.Context, userID string, from, to time.Time) (float64, bool, error) {
	var avg sql.NullFloat64
	err := s.pool.QueryRow(ctx, `
		SELECT AVG(daily_consumption)
		FROM user_badges
		WHERE user_id = $1 AND earned_date BETWEEN $2 AND $3
	`, userID, from, to).Scan(&avg)
	if err != nil {
		return 0, false, fmt.Errorf("could not average consumption: %w", err)
	}

	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}

func (s *PostgresStore) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT id FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("could not scan user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// ReplaceLeaderboard remplace le snapshot de la semaine dans une seule
// transaction. Le verrou advisory sérialise les recalculs concurrents de la
// même semaine, deux semaines différentes ne se bloquent pas entre elles.
func (s *PostgresStore) ReplaceLeaderboard(ctx context.Context, weekStart time.Time, entries []model.LeaderboardEntry) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, weekLockKey(weekStart)); err != nil {
		return fmt.Errorf("could not acquire week lock: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM leaderboard WHERE week_start = $1`, weekStart); err != nil {
		return fmt.Errorf("could not clear leaderboard week: %w", err)
	}

	for _, entry := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO leaderboard
				(user_id, week_start, avg_daily_consumption, avg_daily_emissions,
				 total_points, rank_position, estimated)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, entry.UserID, weekStart, entry.AvgDailyKWh, entry.AvgEmissions,
			entry.Points, entry.Rank, entry.Estimated)
		if err != nil {
			return fmt.Errorf("could not insert leaderboard row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("could not commit leaderboard: %w", err)
	}
	return nil
}

func (s *PostgresStore) TopEntries(ctx context.Context, weekStart time.Time, limit int) ([]model.LeaderboardEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT l.user_id, u.username, l.week_start,
		       l.avg_daily_consumption, l.avg_daily_emissions,
		       l.total_points, l.rank_position, l.estimated
		FROM leaderboard l
		INNER JOIN users u ON l.user_id = u.id
		WHERE l.week_start = $1
		ORDER BY l.rank_position
		LIMIT $2
	`, weekStart, limit)
	if err != nil {
		return nil, fmt.Errorf("could not query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []model.LeaderboardEntry
	for rows.Next() {
		entry, err := scanner.ScanLeaderboardEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan leaderboard row: %w", err)
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

func (s *PostgresStore) UserEntry(ctx context.Context, userID string, weekStart time.Time) (*model.LeaderboardEntry, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT l.user_id, u.username, l.week_start,
		       l.avg_daily_consumption, l.avg_daily_emissions,
		       l.total_points, l.rank_position, l.estimated
		FROM leaderboard l
		INNER JOIN users u ON l.user_id = u.id
		WHERE l.user_id = $1 AND l.week_start = $2
	`, userID, weekStart)

	entry, err := scanner.ScanLeaderboardEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan user entry: %w", err)
	}
	return entry, nil
}

func weekLockKey(weekStart time.Time) int64 {
	return weekStart.Unix()
}
