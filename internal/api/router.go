package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwalsh-dev/statduel/internal/api/handlers"
	"github.com/mwalsh-dev/statduel/internal/api/middleware"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/config"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/sirupsen/logrus"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(
	group *gin.RouterGroup,
	db *database.DB,
	cache *services.CacheService,
	cfg *config.Config,
	generator *services.GameGenerator,
	scheduler *services.Scheduler,
	location *time.Location,
	logger *logrus.Logger,
) {
	// Initialize handlers
	gameHandler := handlers.NewGameHandler(db, cache, generator, location, logger)
	guessHandler := handlers.NewGuessHandler(db, logger)
	playerHandler := handlers.NewPlayerHandler(db, cache, logger)
	statsHandler := handlers.NewStatsHandler(db, cache, logger)
	adminHandler := handlers.NewAdminHandler(scheduler)

	// Public routes
	group.GET("/games/today", gameHandler.GetTodayGame)
	group.GET("/games", gameHandler.ListGames)
	group.GET("/games/:id", gameHandler.GetGame)

	group.GET("/players", playerHandler.ListPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)

	group.GET("/leaderboard", statsHandler.GetLeaderboard)

	// Authenticated routes
	auth := group.Group("")
	auth.Use(middleware.AuthRequired(cfg.JWTSecret))
	{
		auth.POST("/games/:id/guesses", guessHandler.SubmitGuesses)
		auth.GET("/games/:id/guesses", guessHandler.GetGuesses)
		auth.GET("/users/me/stats", statsHandler.GetMyStats)

		// Manual ingestion trigger (should be locked to an admin role when
		// roles exist; today any authenticated user can hit it)
		auth.POST("/admin/scrape", adminHandler.TriggerScrape)
	}
}
