package api

import (
	"net/http"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/handler"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/middleware"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter(h *handler.Handler) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", h.RootHandler).Methods(http.MethodGet)

	// Badges
	r.HandleFunc("/users/{userId}/badge", h.GetBadge).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/badges", h.GetBadgeHistory).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/progress", h.GetProgress).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/samples", h.RecordSample).Methods(http.MethodPost)

	// Leaderboard
	r.HandleFunc("/leaderboard", h.GetLeaderboard).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard/recompute", h.RecomputeLeaderboard).Methods(http.MethodPost)
	r.HandleFunc("/leaderboard/users/{userId}", h.GetUserRank).Methods(http.MethodGet)

	// Insights
	r.HandleFunc("/users/{userId}/suggestions", h.GetSuggestions).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/savings", h.GetSavings).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/charts/{period}", h.GetChartData).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/forecast", h.GetForecast).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
