// Package cache est le snapshot Redis optionnel du leaderboard courant :
// le ZSET porte les scores, la liste affichable est stockée en JSON à côté.
// Le moteur reste la source de vérité, le cache ne fait qu'absorber les
// lectures répétées du dashboard.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/redis/go-redis/v9"
)

// snapshotTTL borne la fraîcheur du cache entre deux recalculs
const snapshotTTL = time.Minute

type LeaderboardCache struct {
	client *redis.Client
}

// New se connecte à Redis et vérifie la liaison
func New(addr string) (*LeaderboardCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &LeaderboardCache{client: client}, nil
}

// NewWithClient injecte un client existant (tests avec miniredis)
func NewWithClient(client *redis.Client) *LeaderboardCache {
	return &LeaderboardCache{client: client}
}

// Refresh remplace le snapshot de la semaine
func (c *LeaderboardCache) Refresh(ctx context.Context, weekStart time.Time, entries []model.LeaderboardEntry) error {
	rows, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("could not marshal leaderboard snapshot: %w", err)
	}

	scoresKey := weekKey(weekStart) + ":scores"

	pipe := c.client.TxPipeline()
	pipe.Del(ctx, scoresKey)
	for _, entry := range entries {
		pipe.ZAdd(ctx, scoresKey, redis.Z{Member: entry.UserID, Score: float64(entry.Points)})
	}
	pipe.Expire(ctx, scoresKey, snapshotTTL)
	pipe.Set(ctx, weekKey(weekStart), rows, snapshotTTL)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("could not refresh leaderboard cache: %w", err)
	}
	return nil
}

// Top retourne les limit premières lignes du snapshot, false si absent
func (c *LeaderboardCache) Top(ctx context.Context, weekStart time.Time, limit int) ([]model.LeaderboardEntry, bool, error) {
	raw, err := c.client.Get(ctx, weekKey(weekStart)).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("could not read leaderboard cache: %w", err)
	}

	var entries []model.LeaderboardEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false, fmt.Errorf("could not decode leaderboard snapshot: %w", err)
	}

	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, true, nil
}

func weekKey(weekStart time.Time) string {
	return "leaderboard:" + weekStart.Format("2006-01-02")
}
