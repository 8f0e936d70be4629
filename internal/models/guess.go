package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwalsh-dev/statduel/pkg/database"
)

// Guess is one user's pick for one category of one game. Append-only.
type Guess struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index:idx_guesses_user_game;not null" json:"user_id"`
	GameID    uint      `gorm:"index:idx_guesses_user_game;not null" json:"game_id"`
	PlayerID  uint      `gorm:"not null" json:"player_id"`
	Category  string    `gorm:"size:50;not null" json:"category"`
	IsCorrect bool      `json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

func (Guess) TableName() string {
	return "guesses"
}

// CreateGuesses persists a full submission in one batch.
func CreateGuesses(db *database.DB, guesses []Guess) error {
	if len(guesses) == 0 {
		return nil
	}
	return db.Create(&guesses).Error
}

// GuessesForUserGame returns a user's stored picks for a game, in the order
// they were written, for replaying past answers.
func GuessesForUserGame(db *database.DB, userID uuid.UUID, gameID uint) ([]Guess, error) {
	var guesses []Guess
	err := db.Where("user_id = ? AND game_id = ?", userID, gameID).
		Order("id ASC").
		Find(&guesses).Error
	return guesses, err
}

// HasSubmitted reports whether the user already answered this game.
func HasSubmitted(db *database.DB, userID uuid.UUID, gameID uint) (bool, error) {
	var count int64
	err := db.Model(&Guess{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	return count > 0, err
}
