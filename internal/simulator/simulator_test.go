package simulator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyConsumptionIsDeterministic(t *testing.T) {
	sim := New()
	day := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)

	first := sim.DailyConsumption("meter-42", day)
	second := sim.DailyConsumption("meter-42", day)
	assert.Equal(t, first, second)

	other := sim.DailyConsumption("meter-43", day)
	assert.NotEqual(t, first, other)
}

func TestDailyConsumptionBounds(t *testing.T) {
	sim := New()

	// mercredi : pas de majoration week-end
	weekday := time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		v := sim.DailyConsumption(id, weekday)
		assert.GreaterOrEqual(t, v, 1.5)
		assert.LessOrEqual(t, v, 8.0)
	}

	// samedi : majoration de 20% possible
	saturday := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		v := sim.DailyConsumption(id, saturday)
		assert.GreaterOrEqual(t, v, 1.5)
		assert.LessOrEqual(t, v, 9.6)
	}
}

func TestForecastShape(t *testing.T) {
	sim := New()

	forecast := sim.Forecast("meter-42", 7)
	require.Len(t, forecast.Dates, 7)
	require.Len(t, forecast.Values, 7)
	require.Len(t, forecast.Confidence, 7)

	for _, c := range forecast.Confidence {
		assert.Equal(t, 0.85, c)
	}
	for _, v := range forecast.Values {
		assert.Greater(t, v, 0.0)
	}

	// même compteur → même prévision
	again := sim.Forecast("meter-42", 7)
	assert.Equal(t, forecast.Values, again.Values)
}

func TestForecastDefaultsToSevenDays(t *testing.T) {
	sim := New()
	forecast := sim.Forecast("meter-42", 0)
	assert.Len(t, forecast.Values, 7)
}

func TestElectricalSeries(t *testing.T) {
	sim := New()

	voltage, current, frequency := sim.Electrical("meter-42", 30)
	require.Len(t, voltage, 30)
	require.Len(t, current, 30)
	require.Len(t, frequency, 30)

	for i := range voltage {
		assert.InDelta(t, 232, voltage[i], 4.01)
		assert.Greater(t, current[i], 0.0)
		assert.InDelta(t, 50, frequency[i], 0.21)
	}
}
