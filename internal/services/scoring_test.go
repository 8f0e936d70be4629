package services

import (
	"encoding/json"
	"testing"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func buildGame(t *testing.T, players []models.Player, categories []models.StatCategory) *models.Game {
	t.Helper()

	playersJSON, err := json.Marshal(players)
	require.NoError(t, err)
	categoriesJSON, err := json.Marshal(categories)
	require.NoError(t, err)

	return &models.Game{
		ID:                 1,
		GameDate:           "2025-01-15",
		SelectedPlayers:    datatypes.JSON(playersJSON),
		SelectedCategories: datatypes.JSON(categoriesJSON),
	}
}

func TestScoreGameTies(t *testing.T) {
	playerA := models.Player{ID: 1, PlayerName: "Player A"}
	playerA.SetStat("points_per_game", "20")
	playerA.SetStat("rebounds_per_game", "5")

	playerB := models.Player{ID: 2, PlayerName: "Player B"}
	playerB.SetStat("points_per_game", "20")
	playerB.SetStat("rebounds_per_game", "10")

	game := buildGame(t,
		[]models.Player{playerA, playerB},
		[]models.StatCategory{
			{Key: "points_per_game", DisplayName: "Points Per Game"},
			{Key: "rebounds_per_game", DisplayName: "Rebounds Per Game"},
		},
	)

	score, err := ScoreGame(game, map[string]uint{
		"points_per_game":   1,
		"rebounds_per_game": 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, score.Score)
	assert.Equal(t, 2, score.Total)
	require.Len(t, score.Results, 2)

	// Both players tied at 20 points, so either pick is correct.
	points := score.Results[0]
	assert.True(t, points.IsCorrect)
	assert.ElementsMatch(t, []uint{1, 2}, points.CorrectPlayerIDs)

	// Rebounds has a single winner and the pick missed.
	rebounds := score.Results[1]
	assert.False(t, rebounds.IsCorrect)
	assert.Equal(t, []uint{2}, rebounds.CorrectPlayerIDs)
	assert.Equal(t, uint(2), rebounds.Standings[0].PlayerID)
}

func TestScoreGameDeterministic(t *testing.T) {
	playerA := models.Player{ID: 1, PlayerName: "Player A"}
	playerA.SetStat("points_per_game", "20")
	playerB := models.Player{ID: 2, PlayerName: "Player B"}
	playerB.SetStat("points_per_game", "20")
	playerC := models.Player{ID: 3, PlayerName: "Player C"}
	playerC.SetStat("points_per_game", "15")

	game := buildGame(t,
		[]models.Player{playerA, playerB, playerC},
		[]models.StatCategory{{Key: "points_per_game", DisplayName: "Points Per Game"}},
	)
	selections := map[string]uint{"points_per_game": 3}

	first, err := ScoreGame(game, selections)
	require.NoError(t, err)
	second, err := ScoreGame(game, selections)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Tied players keep game order in the standings on every invocation.
	standings := first.Results[0].Standings
	assert.Equal(t, uint(1), standings[0].PlayerID)
	assert.Equal(t, uint(2), standings[1].PlayerID)
}

func TestScoreGameNonNumericIsZero(t *testing.T) {
	playerA := models.Player{ID: 1, PlayerName: "Player A"}
	playerA.SetStat("box_plus_minus", "n/a")
	playerB := models.Player{ID: 2, PlayerName: "Player B"}
	playerB.SetStat("box_plus_minus", "1.5")

	game := buildGame(t,
		[]models.Player{playerA, playerB},
		[]models.StatCategory{{Key: "box_plus_minus", DisplayName: "Box Plus/Minus"}},
	)

	score, err := ScoreGame(game, map[string]uint{"box_plus_minus": 1})
	require.NoError(t, err)

	result := score.Results[0]
	assert.False(t, result.IsCorrect)
	assert.Equal(t, []uint{2}, result.CorrectPlayerIDs)
	assert.Equal(t, 0.0, result.Standings[1].Value)
}

func TestScoreGameMissingSelection(t *testing.T) {
	playerA := models.Player{ID: 1, PlayerName: "Player A"}
	game := buildGame(t,
		[]models.Player{playerA},
		[]models.StatCategory{
			{Key: "points_per_game", DisplayName: "Points Per Game"},
			{Key: "total_assists", DisplayName: "Total Assists"},
		},
	)

	_, err := ScoreGame(game, map[string]uint{"points_per_game": 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_assists")
}

func TestScoreGameUnknownPlayer(t *testing.T) {
	playerA := models.Player{ID: 1, PlayerName: "Player A"}
	game := buildGame(t,
		[]models.Player{playerA},
		[]models.StatCategory{{Key: "points_per_game", DisplayName: "Points Per Game"}},
	)

	_, err := ScoreGame(game, map[string]uint{"points_per_game": 99})
	require.Error(t, err)
}
