package handler

import (
	"net/http"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "EcoEnergy Dashboard API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"badges": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/badge", "description": "Badge du jour (param: date)"},
				{"method": "GET", "path": "/users/{userId}/badges", "description": "Historique des badges (param: days)"},
				{"method": "GET", "path": "/users/{userId}/progress", "description": "Progression vers le prochain palier"},
				{"method": "POST", "path": "/users/{userId}/samples", "description": "Enregistrer la consommation d'un jour"},
			},
			"leaderboard": []map[string]string{
				{"method": "GET", "path": "/leaderboard", "description": "Classement de la semaine (param: limit)"},
				{"method": "POST", "path": "/leaderboard/recompute", "description": "Forcer le recalcul (param: week)"},
				{"method": "GET", "path": "/leaderboard/users/{userId}", "description": "Rang d'un utilisateur"},
			},
			"insights": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/suggestions", "description": "Conseils d'économie (param: count)"},
				{"method": "GET", "path": "/users/{userId}/savings", "description": "Économies potentielles"},
				{"method": "GET", "path": "/users/{userId}/charts/{period}", "description": "Données graphiques (daily/weekly)"},
				{"method": "GET", "path": "/users/{userId}/forecast", "description": "Prévision de consommation (param: days)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST du dashboard EcoEnergy - badges, leaderboard et conseils d'économie d'énergie",
		},
	}

	utils.Success(w, routes)
}
