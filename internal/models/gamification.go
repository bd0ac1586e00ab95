package model

import (
	"time"
)

// ConsumptionSample est la mesure journalière fournie par le collaborateur
// de métrologie. Une seule mesure par utilisateur et par jour, la
// re-soumission écrase la précédente (insert or replace).
type ConsumptionSample struct {
	UserID   string    `json:"userId"`
	Date     time.Time `json:"date"`
	DailyKWh float64   `json:"dailyKWh"`
}

// BadgeRecord est l'attribution de badge matérialisée pour un (user, jour).
// Dérivé de la consommation du jour, jamais édité à la main.
type BadgeRecord struct {
	UserID    string    `json:"userId"`
	Date      time.Time `json:"date"`
	BadgeType int       `json:"badgeType"`
	DailyKWh  float64   `json:"dailyKWh"`
}

// Badge est la vue présentation du badge courant d'un utilisateur
type Badge struct {
	Type        int     `json:"type"`
	Name        string  `json:"name"`
	Emoji       string  `json:"emoji"`
	Description string  `json:"description"`
	Color       string  `json:"color"`
	DailyKWh    float64 `json:"dailyKWh"`
}

// BadgeHistoryItem est une entrée de l'historique des badges (ordre décroissant par date)
type BadgeHistoryItem struct {
	Date     time.Time `json:"date"`
	Badge    Badge     `json:"badge"`
	DailyKWh float64   `json:"dailyKWh"`
}

// ProgressReport décrit la progression vers le prochain palier
type ProgressReport struct {
	CurrentAvg float64 `json:"currentConsumption"`
	Percentage float64 `json:"progressPercentage"`
	NextGoal   string  `json:"nextGoal"`
}

// LeaderboardEntry est une ligne du classement hebdomadaire.
// Estimated indique que la moyenne provient du simulateur faute
// d'historique sur la semaine.
type LeaderboardEntry struct {
	UserID       string    `json:"userId"`
	UserName     string    `json:"userName,omitempty"`
	WeekStart    time.Time `json:"weekStart"`
	AvgDailyKWh  float64   `json:"avgConsumption"`
	AvgEmissions float64   `json:"avgEmissions"`
	Points       int       `json:"points"`
	Rank         int       `json:"rank"`
	Estimated    bool      `json:"estimated,omitempty"`
}

// UserRank est le rang d'un utilisateur dans le classement courant
type UserRank struct {
	UserID string `json:"userId"`
	Rank   int    `json:"rank"`
	Points int    `json:"points"`
	Ranked bool   `json:"ranked"`
}
