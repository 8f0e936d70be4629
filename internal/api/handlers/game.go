package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/mwalsh-dev/statduel/pkg/utils"
	"github.com/sirupsen/logrus"
)

type GameHandler struct {
	db        *database.DB
	cache     *services.CacheService
	generator *services.GameGenerator
	location  *time.Location
	logger    *logrus.Logger
}

func NewGameHandler(db *database.DB, cache *services.CacheService, generator *services.GameGenerator, location *time.Location, logger *logrus.Logger) *GameHandler {
	return &GameHandler{
		db:        db,
		cache:     cache,
		generator: generator,
		location:  location,
		logger:    logger,
	}
}

// GetTodayGame returns today's game, creating it on first request of the day.
// "Today" is computed in the configured game time zone so every user sees the
// same puzzle roll over at the same moment. Idempotent.
// GET /api/v1/games/today
func (h *GameHandler) GetTodayGame(c *gin.Context) {
	date := time.Now().In(h.location).Format("2006-01-02")

	cacheKey := services.DailyGameCacheKey(date)
	var cached models.Game
	if err := h.cache.GetSimple(cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	game, err := h.generator.Generate(date)
	if err != nil {
		h.logger.Errorf("Failed to get or create game for %s: %v", date, err)
		utils.SendInternalError(c, "Failed to load today's game")
		return
	}

	if err := h.cache.SetSimple(cacheKey, game, h.untilMidnight()); err != nil {
		h.logger.Warnf("Failed to cache game for %s: %v", date, err)
	}

	utils.SendSuccess(c, game)
}

// ListGames returns the archive of past games, newest first.
// GET /api/v1/games
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := models.ListGames(h.db)
	if err != nil {
		h.logger.Errorf("Failed to list games: %v", err)
		utils.SendInternalError(c, "Failed to list games")
		return
	}
	utils.SendSuccess(c, games)
}

// GetGame returns one archived game by id.
// GET /api/v1/games/:id
func (h *GameHandler) GetGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid game ID", err.Error())
		return
	}

	game, err := models.GetGameByID(h.db, uint(id))
	if err != nil {
		utils.SendNotFound(c, "Game not found")
		return
	}

	utils.SendSuccess(c, game)
}

// untilMidnight caps the daily-game cache entry at the next day boundary.
func (h *GameHandler) untilMidnight() time.Duration {
	now := time.Now().In(h.location)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.location).AddDate(0, 0, 1)
	return midnight.Sub(now)
}
