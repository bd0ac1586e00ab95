package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/gorilla/mux"
)

// GetBadge récupère le badge du jour d'un utilisateur (matérialisé au
// premier accès si absent)
func (h *Handler) GetBadge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			utils.ErrorSimple(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	badge, err := h.engine.GetOrCreateBadge(r.Context(), userID, date)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch badge", err)
		return
	}

	utils.Success(w, badge)
}

// GetBadgeHistory récupère l'historique des badges (par défaut 30 jours,
// ordre décroissant)
func (h *Handler) GetBadgeHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	days := 30
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil {
			days = d
		}
	}

	history, err := h.engine.GetBadgeHistory(r.Context(), userID, days)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch badge history", err)
		return
	}

	utils.Success(w, history)
}

// GetProgress récupère la progression vers le prochain palier
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	progress, err := h.engine.GetProgress(r.Context(), userID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute progress", err)
		return
	}

	utils.Success(w, progress)
}

type sampleRequest struct {
	Date     string  `json:"date"`
	DailyKWh float64 `json:"dailyKWh"`
}

// RecordSample enregistre la consommation journalière d'un utilisateur
// (insert or replace sur le jour)
func (h *Handler) RecordSample(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var req sampleRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			utils.ErrorSimple(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
			return
		}
		date = parsed
	}

	rec, err := h.engine.RecordSample(r.Context(), userID, date, req.DailyKWh)
	if err == gamification.ErrNegativeConsumption {
		utils.ErrorSimple(w, http.StatusBadRequest, "daily consumption cannot be negative")
		return
	}
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not record sample", err)
		return
	}

	utils.Success(w, rec)
}
