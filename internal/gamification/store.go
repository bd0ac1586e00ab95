package gamification

import (
	"context"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
)

// Store est l'accès au stockage du moteur, injecté à la construction.
// Toutes les méthodes propagent les erreurs de stockage telles quelles,
// pas de retry local.
type Store interface {
	// UpsertBadge insère ou remplace le badge d'un (user, jour)
	UpsertBadge(ctx context.Context, rec model.BadgeRecord) error
	// GetBadge retourne nil sans erreur si aucun badge n'existe pour ce jour
	GetBadge(ctx context.Context, userID string, date time.Time) (*model.BadgeRecord, error)
	// BadgeHistory retourne les badges de [from, to] triés par date décroissante
	BadgeHistory(ctx context.Context, userID string, from, to time.Time) ([]model.BadgeRecord, error)
	// AvgConsumption retourne la moyenne des daily_consumption sur [from, to],
	// false si aucun enregistrement dans la fenêtre
	AvgConsumption(ctx context.Context, userID string, from, to time.Time) (float64, bool, error)
	// ListUserIDs retourne le roster dans un ordre stable
	ListUserIDs(ctx context.Context) ([]string, error)
	// ReplaceLeaderboard remplace atomiquement toutes les lignes de la
	// semaine weekStart par entries. Sérialisé par semaine.
	ReplaceLeaderboard(ctx context.Context, weekStart time.Time, entries []model.LeaderboardEntry) error
	// TopEntries retourne les limit premières lignes de la semaine par rang
	TopEntries(ctx context.Context, weekStart time.Time, limit int) ([]model.LeaderboardEntry, error)
	// UserEntry retourne nil sans erreur si l'utilisateur n'est pas classé
	UserEntry(ctx context.Context, userID string, weekStart time.Time) (*model.LeaderboardEntry, error)
}

// UsageSource fournit une consommation journalière de substitution quand
// l'historique manque (simulateur de démo en pratique)
type UsageSource interface {
	DailyConsumption(userID string, date time.Time) float64
}

// Day tronque t à minuit UTC, la granularité des BadgeRecords
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStart retourne le lundi de la semaine de t (fenêtre du leaderboard)
func WeekStart(t time.Time) time.Time {
	d := Day(t)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
