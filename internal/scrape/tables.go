package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StatRow is one extracted table row. TeamAbbr "" is the season-aggregate
// sentinel for traded players.
type StatRow struct {
	PlayerName string
	TeamAbbr   string
	Stats      map[string]string
}

// TableSource describes how to pull one statistics table out of one upstream
// page: where it lives and which data-stat cell feeds which category key.
// Markup changes upstream isolate to the matching source definition.
type TableSource struct {
	Name      string
	URL       string
	TableID   string
	PlayerCol string
	TeamCol   string
	// Columns maps category keys to the table's data-stat identifiers.
	Columns map[string]string
}

const statsBaseURL = "https://www.basketball-reference.com"

// PerGameSource is the anchor table: a player absent here does not exist for
// the ingestion run.
func PerGameSource(season string) TableSource {
	return TableSource{
		Name:      "per_game",
		URL:       fmt.Sprintf("%s/leagues/NBA_%s_per_game.html", statsBaseURL, season),
		TableID:   "per_game_stats",
		PlayerCol: "player",
		TeamCol:   "team_name_abbr",
		Columns: map[string]string{
			"points_per_game":                 "pts_per_g",
			"assists_per_game":                "ast_per_g",
			"rebounds_per_game":               "trb_per_g",
			"blocks_per_game":                 "blk_per_g",
			"steals_per_game":                 "stl_per_g",
			"turnovers_per_game":              "tov_per_g",
			"field_goal_percentage":           "fg_pct",
			"three_point_percentage":          "fg3_pct",
			"free_throw_percentage":           "ft_pct",
			"effective_field_goal_percentage": "efg_pct",
			"three_pointers_per_game":         "fg3_per_g",
			"minutes_played_per_game":         "mp_per_g",
		},
	}
}

func TotalsSource(season string) TableSource {
	return TableSource{
		Name:      "totals",
		URL:       fmt.Sprintf("%s/leagues/NBA_%s_totals.html", statsBaseURL, season),
		TableID:   "totals_stats",
		PlayerCol: "player",
		TeamCol:   "team_name_abbr",
		Columns: map[string]string{
			"total_minutes_played": "mp",
			"total_points":         "pts",
			"total_rebounds":       "trb",
			"total_assists":        "ast",
			"total_field_goals":    "fg",
			"total_three_pointers": "fg3",
			"total_steals":         "stl",
			"total_blocks":         "blk",
			"total_turnovers":      "tov",
			"triple_doubles":       "tpl_dbl",
		},
	}
}

func AdvancedSource(season string) TableSource {
	return TableSource{
		Name:      "advanced",
		URL:       fmt.Sprintf("%s/leagues/NBA_%s_advanced.html", statsBaseURL, season),
		TableID:   "advanced",
		PlayerCol: "player",
		TeamCol:   "team_name_abbr",
		Columns: map[string]string{
			"player_efficiency_rating": "per",
			"box_plus_minus":           "bpm",
			"usage_rate":               "usg_pct",
		},
	}
}

// ExtractRows pulls every data row out of the source's table, in document
// order. Cells are addressed by data-stat identifier, never by position; a
// missing column yields "" rather than an error. Rows with no player name
// (repeated header rows, league-average footers) are dropped.
func ExtractRows(doc *goquery.Document, src TableSource) []StatRow {
	var rows []StatRow

	doc.Find("table#" + src.TableID + " tbody tr").Each(func(_ int, tr *goquery.Selection) {
		if tr.HasClass("thead") {
			return
		}

		name := cellText(tr, src.PlayerCol)
		if name == "" {
			return
		}

		team := cellText(tr, src.TeamCol)
		if isAggregateTeam(team) {
			team = ""
		}

		stats := make(map[string]string, len(src.Columns))
		for key, col := range src.Columns {
			stats[key] = cellText(tr, col)
		}

		rows = append(rows, StatRow{
			PlayerName: name,
			TeamAbbr:   team,
			Stats:      stats,
		})
	})

	return rows
}

func cellText(tr *goquery.Selection, dataStat string) string {
	return strings.TrimSpace(tr.Find(`[data-stat="` + dataStat + `"]`).First().Text())
}

// isAggregateTeam recognizes the multi-team season-total markers ("2TM",
// "TOT", ...) that stand in for a real team abbreviation on traded players.
func isAggregateTeam(team string) bool {
	if team == "" || team == "TOT" {
		return true
	}
	return len(team) == 3 && team[0] >= '2' && team[0] <= '9' && strings.HasSuffix(team, "TM")
}
