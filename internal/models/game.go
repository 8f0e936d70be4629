package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mwalsh-dev/statduel/pkg/database"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// StatCategory is one guessable stat. Key matches a Player stat field.
type StatCategory struct {
	Key         string `json:"key"`
	DisplayName string `json:"display_name"`
}

// Game is the daily puzzle: a fixed sample of players and categories, created
// once per calendar date and immutable afterwards. The selections are embedded
// as JSON so an archived game replays against the exact stats of its day, even
// after the player table has been re-scraped.
type Game struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	GameDate           string         `gorm:"size:10;uniqueIndex;not null" json:"game_date"`
	SelectedPlayers    datatypes.JSON `json:"selected_players"`
	SelectedCategories datatypes.JSON `json:"selected_categories"`
	CreatedAt          time.Time      `json:"created_at"`
}

func (Game) TableName() string {
	return "games"
}

// Players decodes the embedded player sample.
func (g *Game) Players() ([]Player, error) {
	var players []Player
	if err := json.Unmarshal(g.SelectedPlayers, &players); err != nil {
		return nil, fmt.Errorf("failed to decode selected players: %w", err)
	}
	return players, nil
}

// Categories decodes the embedded category sample.
func (g *Game) Categories() ([]StatCategory, error) {
	var categories []StatCategory
	if err := json.Unmarshal(g.SelectedCategories, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode selected categories: %w", err)
	}
	return categories, nil
}

// GetGameByID fetches one game.
func GetGameByID(db *database.DB, id uint) (*Game, error) {
	var game Game
	err := db.First(&game, id).Error
	return &game, err
}

// GetGameByDate fetches the game for a calendar date, if any.
func GetGameByDate(db *database.DB, date string) (*Game, error) {
	var game Game
	err := db.Where("game_date = ?", date).First(&game).Error
	return &game, err
}

// GetOrCreateGameForDate inserts the candidate game unless one already exists
// for its date. The unique index on game_date is the arbiter: if a concurrent
// request wins the insert, the loser re-reads and both converge on one row.
// Returns the persisted game and whether this call created it.
func GetOrCreateGameForDate(db *database.DB, candidate *Game) (*Game, bool, error) {
	var existing Game
	err := db.Where("game_date = ?", candidate.GameDate).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	if err := db.Create(candidate).Error; err != nil {
		// Lost the race on the unique index; the winner's row is authoritative.
		var winner Game
		if readErr := db.Where("game_date = ?", candidate.GameDate).First(&winner).Error; readErr == nil {
			return &winner, false, nil
		}
		return nil, false, err
	}

	return candidate, true, nil
}

// GameSummary is the archive listing shape: no selections, just identity.
type GameSummary struct {
	ID       uint   `json:"id"`
	GameDate string `json:"game_date"`
}

// ListGames returns all games newest-first for the archive view.
func ListGames(db *database.DB) ([]GameSummary, error) {
	var summaries []GameSummary
	err := db.Model(&Game{}).
		Select("id", "game_date").
		Order("game_date DESC").
		Find(&summaries).Error
	return summaries, err
}
