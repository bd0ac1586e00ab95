package gamification

import (
	"fmt"
)

// Tier est le palier d'efficacité énergétique ("badge"), ordonné du plus
// au moins efficace
type Tier int

const (
	TierEcoSaver Tier = iota
	TierGreenUser
	TierCarbonHeavy
	TierEfficientHero
)

// Seuils journaliers en kWh entre les paliers
const (
	ecoSaverMax    = 2.0
	greenUserMax   = 5.0
	carbonHeavyMax = 8.0
)

// ErrNegativeConsumption : une consommation négative vient d'un collaborateur
// défaillant, on la rejette plutôt que de la clamper silencieusement
var ErrNegativeConsumption = fmt.Errorf("daily consumption cannot be negative")

// TierMeta porte l'habillage présentation d'un palier
type TierMeta struct {
	Name        string
	Emoji       string
	Description string
	Color       string
}

var tierMeta = map[Tier]TierMeta{
	TierEcoSaver:      {Name: "Eco Saver", Emoji: "🌱", Description: "Using less than 2 kWh/day", Color: "#4CAF50"},
	TierGreenUser:     {Name: "Green User", Emoji: "🌍", Description: "Using 2-5 kWh/day efficiently", Color: "#2196F3"},
	TierCarbonHeavy:   {Name: "Carbon Heavy", Emoji: "🔥", Description: "Using 5-8 kWh/day", Color: "#FF9800"},
	TierEfficientHero: {Name: "Efficient Hero", Emoji: "🏆", Description: "High usage but improving", Color: "#9C27B0"},
}

// Meta retourne l'habillage du palier
func (t Tier) Meta() TierMeta {
	return tierMeta[t]
}

func (t Tier) String() string {
	return tierMeta[t].Name
}

// Classify associe une consommation journalière à un palier.
// Intervalles semi-ouverts : une valeur exactement sur un seuil appartient
// au palier le plus consommateur (2.0 → Green User, 5.0 → Carbon Heavy).
func Classify(dailyKWh float64) (Tier, error) {
	if dailyKWh < 0 {
		return 0, ErrNegativeConsumption
	}

	switch {
	case dailyKWh < ecoSaverMax:
		return TierEcoSaver, nil
	case dailyKWh < greenUserMax:
		return TierGreenUser, nil
	case dailyKWh < carbonHeavyMax:
		return TierCarbonHeavy, nil
	default:
		return TierEfficientHero, nil
	}
}

// Progress calcule la progression vers le prochain palier à partir de la
// moyenne glissante sur 7 jours. Fonction pure : la moyenne vient de
// l'appelant.
func Progress(current Tier, trailingAvg float64) (percentage float64, nextGoal string) {
	switch current {
	case TierEcoSaver:
		percentage = (ecoSaverMax - trailingAvg) / ecoSaverMax * 100
		nextGoal = "Maintain under 2 kWh/day"
	case TierGreenUser:
		percentage = (greenUserMax - trailingAvg) / 3 * 100
		nextGoal = "Reduce to under 2 kWh/day for Eco Saver"
	case TierCarbonHeavy:
		percentage = (carbonHeavyMax - trailingAvg) / 3 * 100
		nextGoal = "Reduce to under 5 kWh/day for Green User"
	default:
		// Efficient Hero : pourcentage fixe pour la motivation
		percentage = 75
		nextGoal = "Continue improving efficiency"
	}

	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	return percentage, nextGoal
}
