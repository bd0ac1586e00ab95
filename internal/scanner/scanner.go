package scanner

import (
	"database/sql"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/lib/pq"
)

// rowScanner couvre pgx.Row et pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanBadgeRecord scanne une ligne user_badges vers un BadgeRecord
func ScanBadgeRecord(row rowScanner) (*model.BadgeRecord, error) {
	var rec model.BadgeRecord

	err := row.Scan(&rec.UserID, &rec.Date, &rec.BadgeType, &rec.DailyKWh)
	if err != nil {
		return nil, err
	}

	return &rec, nil
}

// ScanLeaderboardEntry scanne une ligne leaderboard (jointure users incluse)
// vers une LeaderboardEntry
func ScanLeaderboardEntry(row rowScanner) (*model.LeaderboardEntry, error) {
	var entry model.LeaderboardEntry
	var userName sql.NullString

	err := row.Scan(
		&entry.UserID, &userName, &entry.WeekStart,
		&entry.AvgDailyKWh, &entry.AvgEmissions,
		&entry.Points, &entry.Rank, &entry.Estimated,
	)
	if err != nil {
		return nil, err
	}

	entry.UserName = utils.NullStringToString(userName)

	return &entry, nil
}

// ScanSuggestion scanne une ligne suggestions vers une Suggestion.
// La colonne tags est un text[] PostgreSQL, scannée via pq.Array.
func ScanSuggestion(row rowScanner) (*model.Suggestion, error) {
	var s model.Suggestion

	err := row.Scan(
		&s.ID, &s.Title, &s.Description,
		&s.PotentialSaving, &s.Difficulty, &s.CO2Reduction,
		pq.Array(&s.Tags),
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

// ScanUserProfile scanne une ligne users vers un UserProfile
func ScanUserProfile(row rowScanner) (*model.UserProfile, error) {
	var user model.UserProfile
	var meterID sql.NullString

	err := row.Scan(&user.ID, &user.Username, &user.Email, &meterID, &user.CreatedAt)
	if err != nil {
		return nil, err
	}

	user.MeterID = utils.NullStringToString(meterID)

	return &user, nil
}
