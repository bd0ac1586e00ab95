package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/advisor"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/api"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/handler"
	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore implémente gamification.Store en mémoire pour les tests HTTP
type fakeStore struct {
	users  []string
	badges map[string]map[string]model.BadgeRecord
	weeks  map[string][]model.LeaderboardEntry
}

func newFakeStore(users ...string) *fakeStore {
	return &fakeStore{
		users:  users,
		badges: make(map[string]map[string]model.BadgeRecord),
		weeks:  make(map[string][]model.LeaderboardEntry),
	}
}

func day(t time.Time) string { return t.Format("2006-01-02") }

func (s *fakeStore) UpsertBadge(ctx context.Context, rec model.BadgeRecord) error {
	if s.badges[rec.UserID] == nil {
		s.badges[rec.UserID] = make(map[string]model.BadgeRecord)
	}
	s.badges[rec.UserID][day(rec.Date)] = rec
	return nil
}

func (s *fakeStore) GetBadge(ctx context.Context, userID string, date time.Time) (*model.BadgeRecord, error) {
	rec, ok := s.badges[userID][day(date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *fakeStore) BadgeHistory(ctx context.Context, userID string, from, to time.Time) ([]model.BadgeRecord, error) {
	var records []model.BadgeRecord
	for _, rec := range s.badges[userID] {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Date.After(records[j].Date) })
	return records, nil
}

func (s *fakeStore) AvgConsumption(ctx context.Context, userID string, from, to time.Time) (float64, bool, error) {
	var sum float64
	var n int
	for _, rec := range s.badges[userID] {
		if !rec.Date.Before(from) && !rec.Date.After(to) {
			sum += rec.DailyKWh
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / float64(n), true, nil
}

func (s *fakeStore) ListUserIDs(ctx context.Context) ([]string, error) {
	return s.users, nil
}

func (s *fakeStore) ReplaceLeaderboard(ctx context.Context, weekStart time.Time, entries []model.LeaderboardEntry) error {
	s.weeks[day(weekStart)] = append([]model.LeaderboardEntry(nil), entries...)
	return nil
}

func (s *fakeStore) TopEntries(ctx context.Context, weekStart time.Time, limit int) ([]model.LeaderboardEntry, error) {
	entries := s.weeks[day(weekStart)]
	if limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *fakeStore) UserEntry(ctx context.Context, userID string, weekStart time.Time) (*model.LeaderboardEntry, error) {
	for _, entry := range s.weeks[day(weekStart)] {
		if entry.UserID == userID {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

type memSuggestionStore struct {
	suggestions []model.Suggestion
}

func (s *memSuggestionStore) All(ctx context.Context) ([]model.Suggestion, error) {
	return s.suggestions, nil
}

func (s *memSuggestionStore) Seed(ctx context.Context, suggestions []model.Suggestion) error {
	s.suggestions = append(s.suggestions, suggestions...)
	return nil
}

func newTestRouter(t *testing.T, users ...string) http.Handler {
	t.Helper()

	sim := simulator.New()
	engine := gamification.NewEngine(newFakeStore(users...), sim)

	adv := advisor.New(&memSuggestionStore{})
	require.NoError(t, adv.EnsureCatalog(context.Background()))

	h := handler.New(engine, adv, sim, nil, false)
	return api.SetupRouter(h)
}

func doRequest(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	var payload map[string]interface{}
	if rr.Body.Len() > 0 && strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	}
	return rr, payload
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	rr, payload := doRequest(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, payload["success"])
}

func TestGetBadgeMaterializes(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodGet, "/users/alice/badge", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].(map[string]interface{})
	assert.Contains(t, []interface{}{"Eco Saver", "Green User", "Carbon Heavy", "Efficient Hero"}, data["name"])
	assert.NotEmpty(t, data["color"])
}

func TestRecordSampleRejectsNegative(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodPost, "/users/alice/samples",
		`{"date":"2025-08-27","dailyKWh":-2}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, false, payload["success"])
}

func TestRecordSampleThenBadge(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, _ := doRequest(t, router, http.MethodPost, "/users/alice/samples",
		`{"date":"2025-08-27","dailyKWh":1.2}`)
	require.Equal(t, http.StatusOK, rr.Code)

	rr, payload := doRequest(t, router, http.MethodGet, "/users/alice/badge?date=2025-08-27", "")
	require.Equal(t, http.StatusOK, rr.Code)
	data := payload["data"].(map[string]interface{})
	assert.Equal(t, "Eco Saver", data["name"])
}

func TestLeaderboardEmptyRoster(t *testing.T) {
	router := newTestRouter(t)

	rr, payload := doRequest(t, router, http.MethodGet, "/leaderboard", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, true, payload["success"])
	assert.Nil(t, payload["data"])
}

func TestLeaderboardRanksUsers(t *testing.T) {
	router := newTestRouter(t, "alice", "bob")

	rr, payload := doRequest(t, router, http.MethodGet, "/leaderboard", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].([]interface{})
	require.Len(t, data, 2)
	first := data[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["rank"])
}

func TestUserRankNotRanked(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodGet, "/leaderboard/users/alice", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].(map[string]interface{})
	assert.Equal(t, false, data["ranked"])
}

func TestSuggestionsEndpoint(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodGet, "/users/alice/suggestions", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].([]interface{})
	assert.Len(t, data, 3)
}

func TestForecastEndpoint(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodGet, "/users/alice/forecast", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].(map[string]interface{})
	assert.Len(t, data["forecast"].([]interface{}), 7)
}

func TestChartDataWeekly(t *testing.T) {
	router := newTestRouter(t, "alice")

	rr, payload := doRequest(t, router, http.MethodGet, "/users/alice/charts/weekly", "")
	require.Equal(t, http.StatusOK, rr.Code)

	data := payload["data"].(map[string]interface{})
	assert.Len(t, data["labels"].([]interface{}), 7)
	assert.Len(t, data["consumption"].([]interface{}), 7)
	assert.Len(t, data["emissions"].([]interface{}), 7)
	// colonnes électriques désactivées par défaut
	assert.NotContains(t, data, "voltage")
}

func TestRecomputeEndpointIsIdempotent(t *testing.T) {
	router := newTestRouter(t, "alice", "bob")

	rr1, payload1 := doRequest(t, router, http.MethodPost, "/leaderboard/recompute", "")
	require.Equal(t, http.StatusOK, rr1.Code)
	rr2, payload2 := doRequest(t, router, http.MethodPost, "/leaderboard/recompute", "")
	require.Equal(t, http.StatusOK, rr2.Code)

	assert.Equal(t, payload1["data"], payload2["data"])
}

func TestUnknownRouteIs404(t *testing.T) {
	router := newTestRouter(t)

	rr, _ := doRequest(t, router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
