package model

// ChartData est la série temporelle consommation/émissions pour le dashboard.
// Les séries électriques ne sont remplies que si le compteur les remonte
// (voir config.MeterHasElectrical).
type ChartData struct {
	Labels      []string  `json:"labels"`
	Consumption []float64 `json:"consumption"`
	Emissions   []float64 `json:"emissions"`
	Voltage     []float64 `json:"voltage,omitempty"`
	Current     []float64 `json:"current,omitempty"`
	Frequency   []float64 `json:"frequency,omitempty"`
}

// Forecast est la prévision de consommation (stub de démo, pas un vrai modèle)
type Forecast struct {
	Dates      []string  `json:"dates"`
	Values     []float64 `json:"forecast"`
	Confidence []float64 `json:"confidence"`
}
