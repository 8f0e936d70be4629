package services

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/mwalsh-dev/statduel/internal/models"
)

// PlayerValue is one player's parsed value for a category, for the ranked
// breakdown shown after scoring.
type PlayerValue struct {
	PlayerID   uint    `json:"player_id"`
	PlayerName string  `json:"player_name"`
	Value      float64 `json:"value"`
}

// CategoryResult grades one category. CorrectPlayerIDs holds every player tied
// for the maximum; a selection is correct iff it is a member.
type CategoryResult struct {
	Category         models.StatCategory `json:"category"`
	SelectedPlayerID uint                `json:"selected_player_id"`
	CorrectPlayerIDs []uint              `json:"correct_player_ids"`
	IsCorrect        bool                `json:"is_correct"`
	Standings        []PlayerValue       `json:"standings"`
}

// GameScore is a full graded submission.
type GameScore struct {
	GameID  uint             `json:"game_id"`
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []CategoryResult `json:"results"`
}

// ScoreGame grades a submission against a game. selections maps category key
// to the chosen player id and must cover every selected category of the game;
// an uncovered category is a caller error, not a zero.
//
// Stat values parse as float64 with unparsable or absent values counting as
// 0.0. Ties for the maximum put every tied player in the correct set. The
// function is pure: identical inputs always produce identical output, which is
// what lets stored guesses be replayed through it later.
func ScoreGame(game *models.Game, selections map[string]uint) (*GameScore, error) {
	players, err := game.Players()
	if err != nil {
		return nil, err
	}
	categories, err := game.Categories()
	if err != nil {
		return nil, err
	}

	playersByID := make(map[uint]*models.Player, len(players))
	for i := range players {
		playersByID[players[i].ID] = &players[i]
	}

	for _, category := range categories {
		if _, ok := selections[category.Key]; !ok {
			return nil, fmt.Errorf("no selection for category %q", category.Key)
		}
	}

	score := &GameScore{
		GameID:  game.ID,
		Total:   len(categories),
		Results: make([]CategoryResult, 0, len(categories)),
	}

	for _, category := range categories {
		selected := selections[category.Key]
		if _, ok := playersByID[selected]; !ok {
			return nil, fmt.Errorf("selected player %d is not part of game %d", selected, game.ID)
		}

		standings := make([]PlayerValue, 0, len(players))
		for _, player := range players {
			standings = append(standings, PlayerValue{
				PlayerID:   player.ID,
				PlayerName: player.PlayerName,
				Value:      parseStat(player.Stat(category.Key)),
			})
		}
		// Stable sort keeps game player order among equal values, so repeated
		// invocations rank ties identically.
		sort.SliceStable(standings, func(i, j int) bool {
			return standings[i].Value > standings[j].Value
		})

		max := standings[0].Value
		var correct []uint
		for _, pv := range standings {
			if pv.Value == max {
				correct = append(correct, pv.PlayerID)
			}
		}

		result := CategoryResult{
			Category:         category,
			SelectedPlayerID: selected,
			CorrectPlayerIDs: correct,
			Standings:        standings,
		}
		for _, id := range correct {
			if id == selected {
				result.IsCorrect = true
				break
			}
		}
		if result.IsCorrect {
			score.Score++
		}

		score.Results = append(score.Results, result)
	}

	return score, nil
}

// parseStat coerces a stored stat string to a float. Missing and malformed
// values are 0.0, never an error.
func parseStat(value string) float64 {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0.0
	}
	return parsed
}
