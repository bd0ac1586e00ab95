package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/gorilla/mux"
)

// GetLeaderboard récupère le classement de la semaine courante.
// Le recalcul complet est déclenché à chaque lecture ; le cache Redis,
// quand il est configuré, absorbe les lectures rapprochées.
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	week := gamification.WeekStart(time.Now())

	if h.cache != nil {
		cached, hit, err := h.cache.Top(r.Context(), week, limit)
		if err != nil {
			utils.LogDebug("leaderboard cache read failed: %v", err)
		}
		// Un snapshot plus court que la limite demandée ne suffit pas
		if hit && len(cached) >= limit {
			utils.Success(w, cached[:limit])
			return
		}
	}

	entries, err := h.engine.GetLeaderboard(r.Context(), limit)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute leaderboard", err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Refresh(r.Context(), week, entries); err != nil {
			utils.LogDebug("leaderboard cache refresh failed: %v", err)
		}
	}

	utils.Success(w, entries)
}

// GetUserRank récupère le rang d'un utilisateur dans le classement courant.
// Un utilisateur non classé n'est pas une erreur (ranked=false).
func (h *Handler) GetUserRank(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	rank, err := h.engine.GetUserRank(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch user rank", err)
		return
	}

	utils.Success(w, rank)
}

// RecomputeLeaderboard force le recalcul du classement d'une semaine
// donnée (par défaut la semaine courante)
func (h *Handler) RecomputeLeaderboard(w http.ResponseWriter, r *http.Request) {
	week := gamification.WeekStart(time.Now())
	if weekStr := r.URL.Query().Get("week"); weekStr != "" {
		parsed, err := time.Parse("2006-01-02", weekStr)
		if err != nil {
			utils.ErrorSimple(w, http.StatusBadRequest, "invalid week, expected YYYY-MM-DD")
			return
		}
		week = gamification.WeekStart(parsed)
	}

	entries, err := h.engine.RecomputeLeaderboard(r.Context(), week)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not recompute leaderboard", err)
		return
	}

	if h.cache != nil {
		if err := h.cache.Refresh(r.Context(), week, entries); err != nil {
			utils.LogDebug("leaderboard cache refresh failed: %v", err)
		}
	}

	utils.Success(w, entries)
}
