package scrape

import (
	"context"
	"fmt"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/sirupsen/logrus"
)

// HeadshotVerifier gates the final player set on a confirmed headshot asset:
// a player without a resolved id, or whose asset probe fails, never reaches
// the game. Broken images are worse than fewer players.
type HeadshotVerifier struct {
	fetcher *Fetcher
	logger  *logrus.Logger
	baseURL string
}

func NewHeadshotVerifier(fetcher *Fetcher, logger *logrus.Logger) *HeadshotVerifier {
	return &HeadshotVerifier{
		fetcher: fetcher,
		logger:  logger,
		baseURL: "https://a.espncdn.com",
	}
}

// Verify probes the headshot URL for every player with a resolved id and
// returns only the players whose asset exists, with ImageURL filled in.
// Probe errors are logged and treated as "no image".
func (v *HeadshotVerifier) Verify(ctx context.Context, players []models.Player, ids map[string]string) []models.Player {
	verified := make([]models.Player, 0, len(players))

	for _, player := range players {
		id, ok := ids[player.PlayerName]
		if !ok {
			continue
		}

		url := fmt.Sprintf("%s/i/headshots/nba/players/full/%s.png", v.baseURL, id)
		exists, err := v.fetcher.Head(ctx, url)
		if err != nil {
			v.logger.Warnf("Headshot probe failed for %s: %v", player.PlayerName, err)
			continue
		}
		if !exists {
			v.logger.Debugf("No headshot for %s (id %s)", player.PlayerName, id)
			continue
		}

		player.ImageURL = url
		verified = append(verified, player)
	}

	return verified
}
