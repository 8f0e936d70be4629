package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/mwalsh-dev/statduel/pkg/database"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// GameGenerator builds the daily game: a random sample of players and stat
// categories, persisted once per calendar date.
type GameGenerator struct {
	db                *database.DB
	logger            *logrus.Logger
	playersPerGame    int
	categoriesPerGame int
	rng               *rand.Rand
}

func NewGameGenerator(db *database.DB, logger *logrus.Logger, playersPerGame, categoriesPerGame int) *GameGenerator {
	return &GameGenerator{
		db:                db,
		logger:            logger,
		playersPerGame:    playersPerGame,
		categoriesPerGame: categoriesPerGame,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate returns the game for a date, creating it if it does not exist yet.
// date is a "2006-01-02" string in the configured game time zone.
func (g *GameGenerator) Generate(date string) (*models.Game, error) {
	if existing, err := models.GetGameByDate(g.db, date); err == nil {
		return existing, nil
	}

	players, err := models.GetAllPlayers(g.db)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}
	if len(players) < g.playersPerGame {
		return nil, fmt.Errorf("player pool too small: have %d, need %d", len(players), g.playersPerGame)
	}

	selectedPlayers := sample(g.rng, players, g.playersPerGame)
	selectedCategories := sample(g.rng, models.CategoryCatalog(), g.categoriesPerGame)

	playersJSON, err := json.Marshal(selectedPlayers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selected players: %w", err)
	}
	categoriesJSON, err := json.Marshal(selectedCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selected categories: %w", err)
	}

	candidate := &models.Game{
		GameDate:           date,
		SelectedPlayers:    datatypes.JSON(playersJSON),
		SelectedCategories: datatypes.JSON(categoriesJSON),
	}

	game, created, err := models.GetOrCreateGameForDate(g.db, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to persist game for %s: %w", date, err)
	}
	if created {
		g.logger.Infof("Generated game %d for %s (%d players, %d categories)",
			game.ID, date, g.playersPerGame, g.categoriesPerGame)
	}

	return game, nil
}

// sample draws n items without replacement via a partial Fisher-Yates shuffle
// of a copy. Order within the sample is not meaningful.
func sample[T any](rng *rand.Rand, items []T, n int) []T {
	pool := make([]T, len(items))
	copy(pool, items)

	if n > len(pool) {
		n = len(pool)
	}
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n]
}
