package handler

import (
	"net/http"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/advisor"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/cache"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/simulator"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/utils"
)

// Handler regroupe les dépendances injectées des handlers HTTP
type Handler struct {
	engine  *gamification.Engine
	advisor *advisor.Advisor
	sim     simulator.Simulator

	// cache peut être nil (REDIS_ADDR absent)
	cache *cache.LeaderboardCache

	// meterElectrical : les compteurs remontent les colonnes électriques
	meterElectrical bool
}

func New(engine *gamification.Engine, adv *advisor.Advisor, sim simulator.Simulator, lbCache *cache.LeaderboardCache, meterElectrical bool) *Handler {
	return &Handler{
		engine:          engine,
		advisor:         adv,
		sim:             sim,
		cache:           lbCache,
		meterElectrical: meterElectrical,
	}
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
