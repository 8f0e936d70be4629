package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/internal/services"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/mwalsh-dev/statduel/pkg/utils"
	"github.com/sirupsen/logrus"
)

type GuessHandler struct {
	db     *database.DB
	logger *logrus.Logger
}

func NewGuessHandler(db *database.DB, logger *logrus.Logger) *GuessHandler {
	return &GuessHandler{
		db:     db,
		logger: logger,
	}
}

type submitGuessesRequest struct {
	// Selections maps category key to the chosen player id; it must cover
	// every category of the game.
	Selections map[string]uint `json:"selections" binding:"required"`
}

// SubmitGuesses grades a user's submission, persists the guesses and folds
// the result into the user's running totals. Re-submitting a game returns the
// originally stored result instead of scoring twice.
// POST /api/v1/games/:id/guesses
func (h *GuessHandler) SubmitGuesses(c *gin.Context) {
	userID, username, ok := currentUser(c)
	if !ok {
		utils.SendUnauthorized(c, "Authentication required")
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid game ID", err.Error())
		return
	}

	game, err := models.GetGameByID(h.db, uint(gameID))
	if err != nil {
		utils.SendNotFound(c, "Game not found")
		return
	}

	submitted, err := models.HasSubmitted(h.db, userID, game.ID)
	if err != nil {
		h.logger.Errorf("Failed to check existing guesses: %v", err)
		utils.SendInternalError(c, "Failed to check existing guesses")
		return
	}
	if submitted {
		h.replay(c, userID, game)
		return
	}

	var req submitGuessesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request body", err.Error())
		return
	}

	score, err := services.ScoreGame(game, req.Selections)
	if err != nil {
		utils.SendValidationError(c, "Invalid submission", err.Error())
		return
	}

	if _, err := models.GetOrCreateUser(h.db, userID, username); err != nil {
		h.logger.Errorf("Failed to ensure user %s: %v", userID, err)
		utils.SendInternalError(c, "Failed to record submission")
		return
	}

	guesses := make([]models.Guess, 0, len(score.Results))
	for _, result := range score.Results {
		guesses = append(guesses, models.Guess{
			UserID:    userID,
			GameID:    game.ID,
			PlayerID:  result.SelectedPlayerID,
			Category:  result.Category.Key,
			IsCorrect: result.IsCorrect,
		})
	}
	if err := models.CreateGuesses(h.db, guesses); err != nil {
		h.logger.Errorf("Failed to store guesses: %v", err)
		utils.SendInternalError(c, "Failed to record submission")
		return
	}

	if err := models.ApplyGameResult(h.db, userID, score.Score, score.Total); err != nil {
		h.logger.Errorf("Failed to update totals for user %s: %v", userID, err)
		utils.SendInternalError(c, "Failed to update user stats")
		return
	}

	utils.SendSuccess(c, score)
}

// GetGuesses replays a user's stored answers for a game through the scoring
// engine, reproducing the original result.
// GET /api/v1/games/:id/guesses
func (h *GuessHandler) GetGuesses(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		utils.SendUnauthorized(c, "Authentication required")
		return
	}

	gameID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid game ID", err.Error())
		return
	}

	game, err := models.GetGameByID(h.db, uint(gameID))
	if err != nil {
		utils.SendNotFound(c, "Game not found")
		return
	}

	h.replay(c, userID, game)
}

func (h *GuessHandler) replay(c *gin.Context, userID uuid.UUID, game *models.Game) {
	guesses, err := models.GuessesForUserGame(h.db, userID, game.ID)
	if err != nil {
		h.logger.Errorf("Failed to load guesses: %v", err)
		utils.SendInternalError(c, "Failed to load guesses")
		return
	}
	if len(guesses) == 0 {
		utils.SendNotFound(c, "No guesses for this game")
		return
	}

	selections := make(map[string]uint, len(guesses))
	for _, guess := range guesses {
		selections[guess.Category] = guess.PlayerID
	}

	score, err := services.ScoreGame(game, selections)
	if err != nil {
		h.logger.Errorf("Failed to replay guesses for game %d: %v", game.ID, err)
		utils.SendInternalError(c, "Failed to replay guesses")
		return
	}

	utils.SendSuccess(c, score)
}

// currentUser pulls the authenticated identity out of the request context.
func currentUser(c *gin.Context) (uuid.UUID, string, bool) {
	value, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, "", false
	}
	userID, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}
	username, _ := c.Get("username")
	name, _ := username.(string)
	return userID, name, true
}
