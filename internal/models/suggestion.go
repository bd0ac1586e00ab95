package model

// Suggestion est un conseil d'économie d'énergie du catalogue
type Suggestion struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	PotentialSaving string   `json:"potentialSaving"`
	Difficulty      string   `json:"difficulty"` // Easy, Medium, Hard
	CO2Reduction    string   `json:"co2Reduction"`
	Tags            []string `json:"tags,omitempty"`
}

// SavingsEstimate est l'estimation d'économies potentielles (CO₂ et coût)
type SavingsEstimate struct {
	CurrentConsumption          float64 `json:"currentConsumption"`
	CurrentEmissions            float64 `json:"currentEmissions"`
	CurrentCost                 float64 `json:"currentCost"`
	PotentialConsumptionCut     float64 `json:"potentialConsumptionReduction"`
	PotentialEmissionsReduction float64 `json:"potentialEmissionsReduction"`
	PotentialCostSavings        float64 `json:"potentialCostSavings"`
}
