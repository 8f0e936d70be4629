package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/mwalsh-dev/statduel/pkg/utils"
	"github.com/sirupsen/logrus"
)

const leaderboardSize = 50

type StatsHandler struct {
	db     *database.DB
	cache  *services.CacheService
	logger *logrus.Logger
}

func NewStatsHandler(db *database.DB, cache *services.CacheService, logger *logrus.Logger) *StatsHandler {
	return &StatsHandler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// GetLeaderboard returns the top users by total score.
// GET /api/v1/leaderboard
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	cacheKey := services.LeaderboardCacheKey()
	var cached []models.User
	if err := h.cache.GetSimple(cacheKey, &cached); err == nil {
		utils.SendSuccess(c, cached)
		return
	}

	users, err := models.Leaderboard(h.db, leaderboardSize)
	if err != nil {
		h.logger.Errorf("Failed to load leaderboard: %v", err)
		utils.SendInternalError(c, "Failed to load leaderboard")
		return
	}

	if err := h.cache.SetSimple(cacheKey, users, time.Minute); err != nil {
		h.logger.Warnf("Failed to cache leaderboard: %v", err)
	}

	utils.SendSuccess(c, users)
}

// GetMyStats returns the authenticated user's running totals.
// GET /api/v1/users/me/stats
func (h *StatsHandler) GetMyStats(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		utils.SendUnauthorized(c, "Authentication required")
		return
	}

	user, err := models.GetOrCreateUser(h.db, userID, username)
	if err != nil {
		h.logger.Errorf("Failed to load user %s: %v", userID, err)
		utils.SendInternalError(c, "Failed to load user stats")
		return
	}

	utils.SendSuccess(c, user)
}
