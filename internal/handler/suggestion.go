package handler

import (
	"net/http"
	"strconv"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/gorilla/mux"
)

// GetSuggestions récupère les conseils d'économie pour un utilisateur
func (h *Handler) GetSuggestions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	count := 3
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		if c, err := strconv.Atoi(countStr); err == nil && c > 0 {
			count = c
		}
	}

	suggestions, err := h.advisor.Suggestions(r.Context(), userID, count)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch suggestions", err)
		return
	}

	utils.Success(w, suggestions)
}

// GetSavings récupère l'estimation d'économies potentielles
func (h *Handler) GetSavings(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	utils.Success(w, h.advisor.PotentialSavings(userID))
}
