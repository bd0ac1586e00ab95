package main

import (
	"context"
	"net/http"
	"os"

	"github.com/Dheemanth49/ecoenergy-dashboard/internal/advisor"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/api"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/cache"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/config"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/database"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/gamification"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/handler"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/logger"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/middleware"
	"github.com/Dheemanth49/ecoenergy-dashboard/internal/simulator"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Could not load config: %v", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	pool, err := database.ConnectPostgres(cfg)
	if err != nil {
		logger.Error("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.InitSchema(ctx, pool); err != nil {
		logger.Error("Schema init failed: %v", err)
		os.Exit(1)
	}

	// Gamification engine avec store et simulateur injectés
	sim := simulator.New()
	engine := gamification.NewEngine(gamification.NewPostgresStore(pool), sim)

	// Advisor + catalogue de suggestions
	adv := advisor.New(advisor.NewPostgresSuggestionStore(pool))
	if err := adv.EnsureCatalog(ctx); err != nil {
		logger.Error("Suggestion catalog init failed: %v", err)
		os.Exit(1)
	}

	// Cache Redis du leaderboard, optionnel
	var lbCache *cache.LeaderboardCache
	if cfg.RedisAddr != "" {
		lbCache, err = cache.New(cfg.RedisAddr)
		if err != nil {
			logger.Error("Redis connection failed: %v", err)
			os.Exit(1)
		}
		logger.Success("Leaderboard cache enabled (%s)", cfg.RedisAddr)
	} else {
		logger.Warning("REDIS_ADDR not set, leaderboard cache disabled")
	}

	// Initialize routes
	h := handler.New(engine, adv, sim, lbCache, cfg.MeterHasElectrical)
	router := api.SetupRouter(h)

	// Wrap router with CORS middleware
	srv := middleware.CORSMiddleware(router)

	// Start server
	logger.Success("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
