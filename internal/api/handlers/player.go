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

type PlayerHandler struct {
	db     *database.DB
	cache  *services.CacheService
	logger *logrus.Logger
}

func NewPlayerHandler(db *database.DB, cache *services.CacheService, logger *logrus.Logger) *PlayerHandler {
	return &PlayerHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// ListPlayers returns the full playable pool.
// GET /api/v1/players
func (h *PlayerHandler) ListPlayers(c *gin.Context) {
	cacheKey := services.PlayersCacheKey()
	var cached []models.Player
	if err := h.cache.GetSimple(cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	players, err := models.GetAllPlayers(h.db)
	if err != nil {
		h.logger.Errorf("Failed to list players: %v", err)
		utils.SendInternalError(c, "Failed to list players")
		return
	}

	if err := h.cache.SetSimple(cacheKey, players, time.Hour); err != nil {
		h.logger.Warnf("Failed to cache players: %v", err)
	}

	utils.SendSuccess(c, players)
}

// GetPlayer returns one player by id.
// GET /api/v1/players/:id
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid player ID", err.Error())
		return
	}

	player, err := models.GetPlayerByID(h.db, uint(id))
	if err != nil {
		utils.SendNotFound(c, "Player not found")
		return
	}

	utils.SendSuccess(c, player)
}
