package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	model "github.com/Dheemanth49/ecoenergy-dashboard/internal/models"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
	"github.com/gorilla/mux"
)

// GetChartData construit la série consommation/émissions du dashboard.
// daily = 30 jours, weekly = 7 jours. Les jours sans mesure sont comblés
// par le simulateur pour que la courbe reste continue.
func (h *Handler) GetChartData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	period := vars["period"]

	days := 30
	if period == "weekly" {
		days = 7
	}

	history, err := h.engine.GetBadgeHistory(r.Context(), userID, days)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not fetch chart data", err)
		return
	}

	byDay := make(map[string]float64, len(history))
	for _, item := range history {
		byDay[item.Date.Format("2006-01-02")] = item.DailyKWh
	}

	chart := model.ChartData{
		Labels:      make([]string, 0, days),
		Consumption: make([]float64, 0, days),
		Emissions:   make([]float64, 0, days),
	}

	today := gamification.Day(time.Now())
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		label := day.Format("2006-01-02")

		kWh, ok := byDay[label]
		if !ok {
			kWh = h.sim.DailyConsumption(userID, day)
		}

		chart.Labels = append(chart.Labels, label)
		chart.Consumption = append(chart.Consumption, kWh)
		chart.Emissions = append(chart.Emissions, kWh*gamification.EmissionFactor)
	}

	if h.meterElectrical {
		chart.Voltage, chart.Current, chart.Frequency = h.sim.Electrical(userID, days)
	}

	utils.Success(w, chart)
}

// GetForecast retourne la prévision de consommation (stub de démo)
func (h *Handler) GetForecast(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	days := 7
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if d, err := strconv.Atoi(daysStr); err == nil && d > 0 {
			days = d
		}
	}

	utils.Success(w, h.sim.Forecast(userID, days))
}
