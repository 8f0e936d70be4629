package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"gorm.io/gorm"
)

// User carries the running totals shown on the leaderboard. Totals are only
// ever incremented on submission, never recomputed from the guess history.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:50;not null" json:"username"`
	TotalGames   int       `gorm:"default:0" json:"total_games"`
	TotalScore   int       `gorm:"default:0" json:"total_score"`
	TotalGuesses int       `gorm:"default:0" json:"total_guesses"`
	Accuracy     float64   `gorm:"default:0" json:"accuracy"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// GetUserByID fetches a user by UUID.
func GetUserByID(db *database.DB, id uuid.UUID) (*User, error) {
	var user User
	err := db.Where("id = ?", id).First(&user).Error
	return &user, err
}

// GetOrCreateUser fetches the user for an authenticated identity, creating the
// row on first sight.
func GetOrCreateUser(db *database.DB, id uuid.UUID, username string) (*User, error) {
	var user User
	err := db.Where(User{ID: id}).
		Attrs(User{Username: username}).
		FirstOrCreate(&user).Error
	return &user, err
}

// ApplyGameResult folds one scored game into the user's running totals using
// atomic SQL increments; accuracy is derived in the same statement so the
// update stays race-free under concurrent submissions.
func ApplyGameResult(db *database.DB, userID uuid.UUID, correct, guesses int) error {
	return db.Model(&User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"total_games":   gorm.Expr("total_games + 1"),
		"total_score":   gorm.Expr("total_score + ?", correct),
		"total_guesses": gorm.Expr("total_guesses + ?", guesses),
		"accuracy":      gorm.Expr("CAST(total_score + ? AS REAL) / (total_guesses + ?)", correct, guesses),
	}).Error
}

// Leaderboard returns the top users by total score.
func Leaderboard(db *database.DB, limit int) ([]User, error) {
	var users []User
	err := db.Order("total_score DESC, accuracy DESC").Limit(limit).Find(&users).Error
	return users, err
}
