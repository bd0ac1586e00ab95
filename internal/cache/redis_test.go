package cache

import (
	"context"
	"testing"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *LeaderboardCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewWithClient(client)
}

func sampleWeek() (time.Time, []model.LeaderboardEntry) {
	week := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	return week, []model.LeaderboardEntry{
		{UserID: "alice", UserName: "alice", WeekStart: week, AvgDailyKWh: 1.5, AvgEmissions: 1.23, Points: 85, Rank: 1},
		{UserID: "bob", UserName: "bob", WeekStart: week, AvgDailyKWh: 6.0, AvgEmissions: 4.92, Points: 40, Rank: 2},
	}
}

func TestRefreshAndTop(t *testing.T) {
	c := newTestCache(t)
	week, entries := sampleWeek()

	require.NoError(t, c.Refresh(context.Background(), week, entries))

	cached, hit, err := c.Top(context.Background(), week, 10)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, entries, cached)
}

func TestTopAppliesLimit(t *testing.T) {
	c := newTestCache(t)
	week, entries := sampleWeek()

	require.NoError(t, c.Refresh(context.Background(), week, entries))

	cached, hit, err := c.Top(context.Background(), week, 1)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, cached, 1)
	assert.Equal(t, "alice", cached[0].UserID)
}

func TestTopMissForUnknownWeek(t *testing.T) {
	c := newTestCache(t)
	week, entries := sampleWeek()

	require.NoError(t, c.Refresh(context.Background(), week, entries))

	_, hit, err := c.Top(context.Background(), week.AddDate(0, 0, 7), 10)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRefreshReplacesPreviousSnapshot(t *testing.T) {
	c := newTestCache(t)
	week, entries := sampleWeek()

	require.NoError(t, c.Refresh(context.Background(), week, entries))
	require.NoError(t, c.Refresh(context.Background(), week, entries[:1]))

	cached, hit, err := c.Top(context.Background(), week, 10)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Len(t, cached, 1)
}
