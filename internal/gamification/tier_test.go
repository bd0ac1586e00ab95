package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name     string
		dailyKWh float64
		want     Tier
	}{
		{"zero", 0, TierEcoSaver},
		{"low", 1.5, TierEcoSaver},
		{"just under eco limit", 1.999, TierEcoSaver},
		{"exactly 2.0 goes up", 2.0, TierGreenUser},
		{"mid green", 3.5, TierGreenUser},
		{"exactly 5.0 goes up", 5.0, TierCarbonHeavy},
		{"just under heavy limit", 7.999, TierCarbonHeavy},
		{"exactly 8.0 goes up", 8.0, TierEfficientHero},
		{"very high", 42.0, TierEfficientHero},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.dailyKWh)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyRejectsNegative(t *testing.T) {
	_, err := Classify(-0.1)
	assert.ErrorIs(t, err, ErrNegativeConsumption)
}

func TestProgress(t *testing.T) {
	t.Run("green user at 3.5 is halfway", func(t *testing.T) {
		pct, goal := Progress(TierGreenUser, 3.5)
		assert.InDelta(t, 50.0, pct, 1e-9)
		assert.Equal(t, "Reduce to under 2 kWh/day for Eco Saver", goal)
	})

	t.Run("eco saver clamped at 100", func(t *testing.T) {
		pct, goal := Progress(TierEcoSaver, 0)
		assert.Equal(t, 100.0, pct)
		assert.Equal(t, "Maintain under 2 kWh/day", goal)
	})

	t.Run("carbon heavy above threshold clamped at 0", func(t *testing.T) {
		pct, _ := Progress(TierCarbonHeavy, 9.0)
		assert.Equal(t, 0.0, pct)
	})

	t.Run("efficient hero is a fixed 75", func(t *testing.T) {
		pct, goal := Progress(TierEfficientHero, 12.0)
		assert.Equal(t, 75.0, pct)
		assert.Equal(t, "Continue improving efficiency", goal)
	})
}

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 100, PointsFor(0))
	assert.Equal(t, 85, PointsFor(1.5))
	assert.Equal(t, 40, PointsFor(6.0))
	assert.Equal(t, 0, PointsFor(10))
	assert.Equal(t, 0, PointsFor(15))
}

func TestWeekStart(t *testing.T) {
	// mercredi 27 août 2025 → lundi 25 août
	wednesday := time.Date(2025, 8, 27, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), WeekStart(wednesday))

	// un lundi reste lui-même
	monday := time.Date(2025, 8, 25, 3, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), WeekStart(monday))

	// dimanche appartient à la semaine entamée
	sunday := time.Date(2025, 8, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC), WeekStart(sunday))
}
