package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuessLifecycle(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()

	submitted, err := HasSubmitted(db, userID, 1)
	require.NoError(t, err)
	assert.False(t, submitted)

	guesses := []Guess{
		{UserID: userID, GameID: 1, PlayerID: 10, Category: "points_per_game", IsCorrect: true},
		{UserID: userID, GameID: 1, PlayerID: 11, Category: "total_assists", IsCorrect: false},
		{UserID: userID, GameID: 1, PlayerID: 10, Category: "usage_rate", IsCorrect: true},
	}
	require.NoError(t, CreateGuesses(db, guesses))

	submitted, err = HasSubmitted(db, userID, 1)
	require.NoError(t, err)
	assert.True(t, submitted)

	stored, err := GuessesForUserGame(db, userID, 1)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, "points_per_game", stored[0].Category)
	assert.Equal(t, "total_assists", stored[1].Category)
	assert.Equal(t, "usage_rate", stored[2].Category)
}

func TestGuessesScopedToUserAndGame(t *testing.T) {
	db := newTestDB(t)
	alice := uuid.New()
	bob := uuid.New()

	require.NoError(t, CreateGuesses(db, []Guess{
		{UserID: alice, GameID: 1, PlayerID: 10, Category: "points_per_game"},
		{UserID: alice, GameID: 2, PlayerID: 10, Category: "points_per_game"},
		{UserID: bob, GameID: 1, PlayerID: 11, Category: "points_per_game"},
	}))

	stored, err := GuessesForUserGame(db, alice, 1)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, alice, stored[0].UserID)
	assert.Equal(t, uint(1), stored[0].GameID)

	submitted, err := HasSubmitted(db, bob, 2)
	require.NoError(t, err)
	assert.False(t, submitted)
}

func TestCreateGuessesEmpty(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, CreateGuesses(db, nil))
}
