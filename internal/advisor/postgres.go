package advisor

import (
	"context"
	"fmt"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/scanner"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

// PostgresSuggestionStore implémente SuggestionStore au-dessus de pgx
type PostgresSuggestionStore struct {
	pool *pgxpool.Pool
}

func NewPostgresSuggestionStore(pool *pgxpool.Pool) *PostgresSuggestionStore {
	return &PostgresSuggestionStore{pool: pool}
}

func (s *PostgresSuggestionStore) All(ctx context.Context) ([]model.Suggestion, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, title, description, potential_saving, difficulty, co2_reduction, tags
		FROM suggestions
		ORDER BY title
	`)
	if err != nil {
		return nil, fmt.Errorf("could not query suggestions: %w", err)
	}
	defer rows.Close()

	var suggestions []model.Suggestion
	for rows.Next() {
		s, err := scanner.ScanSuggestion(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan suggestion: %w", err)
		}
		suggestions = append(suggestions, *s)
	}

	return suggestions, rows.Err()
}

func (s *PostgresSuggestionStore) Seed(ctx context.Context, suggestions []model.Suggestion) error {
	for _, sg := range suggestions {
		id := sg.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := s.pool.Exec(ctx, `
			INSERT INTO suggestions (id, title, description, potential_saving, difficulty, co2_reduction, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO NOTHING
		`, id, sg.Title, sg.Description, sg.PotentialSaving, sg.Difficulty, sg.CO2Reduction, pq.Array(sg.Tags))
		if err != nil {
			return fmt.Errorf("could not seed suggestion %q: %w", sg.Title, err)
		}
	}
	return nil
}
