// Package advisor sert les conseils d'économie d'énergie et l'estimation
// des économies potentielles. Le catalogue vit en base, la sélection est
// mélangée par compteur pour paraître personnalisée.
package advisor

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"

	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
)

// Tarif et hypothèses de l'estimation d'économies
const (
	monthlyConsumptionKWh = 100.0
	emissionFactor        = 0.82
	costPerKWh            = 8.5
	reductionPotential    = 0.20
)

// SuggestionStore est l'accès au catalogue de suggestions
type SuggestionStore interface {
	All(ctx context.Context) ([]model.Suggestion, error)
	Seed(ctx context.Context, suggestions []model.Suggestion) error
}

type Advisor struct {
	store SuggestionStore
}

func New(store SuggestionStore) *Advisor {
	return &Advisor{store: store}
}

// Suggestions retourne n conseils tirés du catalogue, dans un ordre
// déterministe par compteur
func (a *Advisor) Suggestions(ctx context.Context, meterID string, n int) ([]model.Suggestion, error) {
	if n <= 0 {
		n = 3
	}

	all, err := a.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not load suggestions: %w", err)
	}

	h := fnv.New64a()
	h.Write([]byte(meterID))
	r := rand.New(rand.NewSource(int64(h.Sum64() % 1000)))
	r.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	if n > len(all) {
		n = len(all)
	}
	return all[:n], nil
}

// PotentialSavings estime les économies mensuelles de CO₂ et de coût
// pour une réduction de 20% de la consommation
func (a *Advisor) PotentialSavings(meterID string) model.SavingsEstimate {
	return model.SavingsEstimate{
		CurrentConsumption:          monthlyConsumptionKWh,
		CurrentEmissions:            monthlyConsumptionKWh * emissionFactor,
		CurrentCost:                 monthlyConsumptionKWh * costPerKWh,
		PotentialConsumptionCut:     monthlyConsumptionKWh * reductionPotential,
		PotentialEmissionsReduction: monthlyConsumptionKWh * emissionFactor * reductionPotential,
		PotentialCostSavings:        monthlyConsumptionKWh * costPerKWh * reductionPotential,
	}
}

// EnsureCatalog insère le catalogue par défaut si la table est vide
func (a *Advisor) EnsureCatalog(ctx context.Context) error {
	all, err := a.store.All(ctx)
	if err != nil {
		return err
	}
	if len(all) > 0 {
		return nil
	}
	return a.store.Seed(ctx, DefaultCatalog())
}

// DefaultCatalog retourne les conseils par défaut
func DefaultCatalog() []model.Suggestion {
	return []model.Suggestion{
		{
			Title:           "Optimize Peak Hours",
			Description:     "Shift high-energy activities to off-peak hours (11 PM - 6 AM)",
			PotentialSaving: "15-20%",
			Difficulty:      "Easy",
			CO2Reduction:    "0.5 kg/month",
			Tags:            []string{"behaviour", "scheduling"},
		},
		{
			Title:           "Smart Thermostat",
			Description:     "Install a programmable thermostat to optimize heating/cooling",
			PotentialSaving: "10-15%",
			Difficulty:      "Medium",
			CO2Reduction:    "2.1 kg/month",
			Tags:            []string{"equipment", "heating"},
		},
		{
			Title:           "LED Lighting",
			Description:     "Replace incandescent bulbs with LED alternatives",
			PotentialSaving: "5-10%",
			Difficulty:      "Easy",
			CO2Reduction:    "0.8 kg/month",
			Tags:            []string{"equipment", "lighting"},
		},
		{
			Title:           "Unplug Devices",
			Description:     "Unplug electronics when not in use to eliminate phantom loads",
			PotentialSaving: "5-8%",
			Difficulty:      "Easy",
			CO2Reduction:    "0.3 kg/month",
			Tags:            []string{"behaviour"},
		},
		{
			Title:           "Energy-Efficient Appliances",
			Description:     "Upgrade to ENERGY STAR certified appliances",
			PotentialSaving: "20-30%",
			Difficulty:      "Hard",
			CO2Reduction:    "4.2 kg/month",
			Tags:            []string{"equipment", "investment"},
		},
	}
}
