// Package simulator fournit des consommations de démonstration quand aucune
// mesure réelle n'est disponible : déterministe par (utilisateur, jour) pour
// que les relectures soient stables.
package simulator

import (
	"hash/fnv"
	"math"
	"math/rand"
	"time"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
)

type Simulator struct{}

func New() Simulator {
	return Simulator{}
}

// DailyConsumption génère une consommation journalière plausible en kWh,
// stable pour un même couple (userID, jour). Majoration de 20% le week-end.
func (Simulator) DailyConsumption(userID string, date time.Time) float64 {
	r := rand.New(rand.NewSource(seedFor(userID) + int64(date.Day())))

	consumption := 1.5 + r.Float64()*6.5
	if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
		consumption *= 1.2
	}

	return round2(consumption)
}

// Forecast génère une prévision de démo sur days jours pour un compteur.
// Stub assumé : valeurs pseudo-aléatoires autour d'une base propre au
// compteur, confiance plate à 0.85.
func (Simulator) Forecast(meterID string, days int) model.Forecast {
	if days <= 0 {
		days = 7
	}

	r := rand.New(rand.NewSource(seedFor(meterID) % 1000))
	base := 2.0 + r.Float64()*4.0

	now := time.Now()
	dates := make([]string, days)
	values := make([]float64, days)
	confidence := make([]float64, days)
	for i := 0; i < days; i++ {
		dates[i] = now.AddDate(0, 0, i+1).Format("2006-01-02")
		values[i] = round2(base + (r.Float64()*2 - 1))
		confidence[i] = 0.85
	}

	return model.Forecast{Dates: dates, Values: values, Confidence: confidence}
}

// Electrical génère les séries électriques de démo (tension, courant,
// fréquence) alignées sur une série de consommation
func (Simulator) Electrical(meterID string, n int) (voltage, current, frequency []float64) {
	r := rand.New(rand.NewSource(seedFor(meterID)))

	voltage = make([]float64, n)
	current = make([]float64, n)
	frequency = make([]float64, n)
	for i := 0; i < n; i++ {
		voltage[i] = round2(228 + r.Float64()*8)
		current[i] = round2(2 + r.Float64()*6)
		frequency[i] = round2(49.8 + r.Float64()*0.4)
	}
	return voltage, current, frequency
}

func seedFor(id string) int64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return int64(h.Sum64() & math.MaxInt64)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
