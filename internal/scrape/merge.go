package scrape

import (
	"github.com/mwalsh-dev/statduel/internal/models"
)

// MergePlayers joins the three reconciled row-sets into one record per player.
// The per-game set is the anchor: a player missing there is excluded even if
// totals or advanced know them. The anchor is capped at maxPlayers in source
// order to bound the roster and headshot network fan-out downstream.
//
// Every stat passes through the zero-default rule: a blank value becomes "0",
// so no field is ever an empty string after merging.
func MergePlayers(perGame, totals, advanced []StatRow, maxPlayers int) []models.Player {
	if maxPlayers > 0 && len(perGame) > maxPlayers {
		perGame = perGame[:maxPlayers]
	}

	totalsByName := indexByName(totals)
	advancedByName := indexByName(advanced)

	players := make([]models.Player, 0, len(perGame))
	for _, anchor := range perGame {
		player := models.Player{
			PlayerName: anchor.PlayerName,
			TeamAbbr:   anchor.TeamAbbr,
		}

		copyStats(&player, anchor.Stats)
		if row, ok := totalsByName[anchor.PlayerName]; ok {
			copyStats(&player, row.Stats)
		}
		if row, ok := advancedByName[anchor.PlayerName]; ok {
			copyStats(&player, row.Stats)
		}

		// Fields untouched above (player absent from totals/advanced, or a
		// column missing upstream) still get the zero default.
		for _, category := range models.CategoryCatalog() {
			if player.Stat(category.Key) == "" {
				player.SetStat(category.Key, "0")
			}
		}

		players = append(players, player)
	}

	return players
}

func indexByName(rows []StatRow) map[string]StatRow {
	byName := make(map[string]StatRow, len(rows))
	for _, row := range rows {
		byName[row.PlayerName] = row
	}
	return byName
}

func copyStats(player *models.Player, stats map[string]string) {
	for key, value := range stats {
		if value == "" {
			value = "0"
		}
		player.SetStat(key, value)
	}
}
