package gamification

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
)

// EmissionFactor est l'intensité carbone fixe en kg CO₂ par kWh
const EmissionFactor = 0.82

// defaultTrailingAvg est la moyenne utilisée quand un utilisateur n'a
// aucun historique sur 7 jours (fallback documenté, pas une erreur)
const defaultTrailingAvg = 5.0

// Engine est le moteur de badges et de leaderboard. Le store et la source
// d'usage de substitution sont injectés, aucune connexion globale.
type Engine struct {
	store Store
	usage UsageSource
	now   func() time.Time
}

// NewEngine construit le moteur
func NewEngine(store Store, usage UsageSource) *Engine {
	return &Engine{
		store: store,
		usage: usage,
		now:   time.Now,
	}
}

// RecordSample insère ou remplace la consommation d'un (user, jour) et
// matérialise le badge dérivé
func (e *Engine) RecordSample(ctx context.Context, userID string, date time.Time, dailyKWh float64) (model.BadgeRecord, error) {
	tier, err := Classify(dailyKWh)
	if err != nil {
		return model.BadgeRecord{}, err
	}

	rec := model.BadgeRecord{
		UserID:    userID,
		Date:      Day(date),
		BadgeType: int(tier),
		DailyKWh:  dailyKWh,
	}

	if err := e.store.UpsertBadge(ctx, rec); err != nil {
		return model.BadgeRecord{}, fmt.Errorf("could not record sample: %w", err)
	}

	return rec, nil
}

// GetOrCreateBadge retourne le badge d'un (user, jour) et le matérialise
// s'il n'existe pas encore (consommation simulée faute de mesure).
// Non pure par contrat : le premier accès écrit en base. Idempotent pour
// un jour déjà stocké.
func (e *Engine) GetOrCreateBadge(ctx context.Context, userID string, date time.Time) (model.Badge, error) {
	day := Day(date)

	rec, err := e.store.GetBadge(ctx, userID, day)
	if err != nil {
		return model.Badge{}, fmt.Errorf("could not fetch badge: %w", err)
	}

	if rec == nil {
		dailyKWh := e.usage.DailyConsumption(userID, day)
		created, err := e.RecordSample(ctx, userID, day, dailyKWh)
		if err != nil {
			return model.Badge{}, err
		}
		rec = &created
	}

	return badgeView(*rec), nil
}

// GetBadgeHistory retourne l'historique des badges sur days jours,
// trié par date décroissante
func (e *Engine) GetBadgeHistory(ctx context.Context, userID string, days int) ([]model.BadgeHistoryItem, error) {
	if days <= 0 {
		days = 30
	}

	to := Day(e.now())
	from := to.AddDate(0, 0, -days)

	records, err := e.store.BadgeHistory(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("could not fetch badge history: %w", err)
	}

	history := make([]model.BadgeHistoryItem, 0, len(records))
	for _, rec := range records {
		history = append(history, model.BadgeHistoryItem{
			Date:     rec.Date,
			Badge:    badgeView(rec),
			DailyKWh: rec.DailyKWh,
		})
	}

	return history, nil
}

// GetProgress calcule la progression vers le prochain palier à partir de
// la moyenne glissante des 7 derniers badges
func (e *Engine) GetProgress(ctx context.Context, userID string) (model.ProgressReport, error) {
	badge, err := e.GetOrCreateBadge(ctx, userID, e.now())
	if err != nil {
		return model.ProgressReport{}, err
	}

	to := Day(e.now())
	from := to.AddDate(0, 0, -7)

	avg, ok, err := e.store.AvgConsumption(ctx, userID, from, to)
	if err != nil {
		return model.ProgressReport{}, fmt.Errorf("could not compute trailing average: %w", err)
	}
	if !ok {
		avg = defaultTrailingAvg
	}

	percentage, nextGoal := Progress(Tier(badge.Type), avg)

	return model.ProgressReport{
		CurrentAvg: avg,
		Percentage: percentage,
		NextGoal:   nextGoal,
	}, nil
}

// RecomputeLeaderboard recalcule le classement complet de la semaine
// weekStart et remplace le snapshot stocké. Idempotent à données stables :
// deux appels successifs produisent le même classement.
func (e *Engine) RecomputeLeaderboard(ctx context.Context, weekStart time.Time) ([]model.LeaderboardEntry, error) {
	week := WeekStart(weekStart)
	weekEnd := week.AddDate(0, 0, 6)

	userIDs, err := e.store.ListUserIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list users: %w", err)
	}

	entries := make([]model.LeaderboardEntry, 0, len(userIDs))
	for _, userID := range userIDs {
		avg, ok, err := e.store.AvgConsumption(ctx, userID, week, weekEnd)
		if err != nil {
			return nil, fmt.Errorf("could not average week for user %s: %w", userID, err)
		}

		estimated := false
		if !ok {
			// Pas d'historique cette semaine : moyenne simulée,
			// signalée comme telle à l'appelant
			avg = e.usage.DailyConsumption(userID, week)
			estimated = true
		}

		entries = append(entries, model.LeaderboardEntry{
			UserID:       userID,
			WeekStart:    week,
			AvgDailyKWh:  avg,
			AvgEmissions: avg * EmissionFactor,
			Points:       PointsFor(avg),
			Estimated:    estimated,
		})
	}

	// Tri stable : les égalités gardent l'ordre du roster
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Points > entries[j].Points
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	if err := e.store.ReplaceLeaderboard(ctx, week, entries); err != nil {
		return nil, fmt.Errorf("could not replace leaderboard: %w", err)
	}

	return entries, nil
}

// GetLeaderboard recalcule le classement de la semaine courante puis
// retourne les limit premières lignes avec les noms d'utilisateurs
func (e *Engine) GetLeaderboard(ctx context.Context, limit int) ([]model.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	week := WeekStart(e.now())
	if _, err := e.RecomputeLeaderboard(ctx, week); err != nil {
		return nil, err
	}

	entries, err := e.store.TopEntries(ctx, week, limit)
	if err != nil {
		return nil, fmt.Errorf("could not fetch leaderboard: %w", err)
	}

	return entries, nil
}

// GetUserRank retourne le rang de l'utilisateur pour la semaine courante.
// Un utilisateur absent du classement n'est pas une erreur : Ranked=false.
func (e *Engine) GetUserRank(ctx context.Context, userID string) (model.UserRank, error) {
	week := WeekStart(e.now())

	entry, err := e.store.UserEntry(ctx, userID, week)
	if err != nil {
		return model.UserRank{}, fmt.Errorf("could not fetch user rank: %w", err)
	}
	if entry == nil {
		return model.UserRank{UserID: userID, Ranked: false}, nil
	}

	return model.UserRank{
		UserID: userID,
		Rank:   entry.Rank,
		Points: entry.Points,
		Ranked: true,
	}, nil
}

// PointsFor convertit une moyenne journalière en points : plus la
// consommation est basse, plus le score est haut. 0 point dès 10 kWh/jour.
func PointsFor(avgDailyKWh float64) int {
	points := int(math.Floor((10 - avgDailyKWh) * 10))
	if points < 0 {
		return 0
	}
	return points
}

func badgeView(rec model.BadgeRecord) model.Badge {
	meta := Tier(rec.BadgeType).Meta()
	return model.Badge{
		Type:        rec.BadgeType,
		Name:        meta.Name,
		Emoji:       meta.Emoji,
		Description: meta.Description,
		Color:       meta.Color,
		DailyKWh:    rec.DailyKWh,
	}
}
