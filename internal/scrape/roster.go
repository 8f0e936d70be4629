package scrape

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/sirupsen/logrus"
)

// espnTeamSlugs maps basketball-reference team abbreviations to ESPN roster
// page slugs. The two sites disagree on a handful of franchises.
var espnTeamSlugs = map[string]string{
	"ATL": "atl", "BOS": "bos", "BRK": "bkn", "CHO": "cha", "CHI": "chi",
	"CLE": "cle", "DAL": "dal", "DEN": "den", "DET": "det", "GSW": "gs",
	"HOU": "hou", "IND": "ind", "LAC": "lac", "LAL": "lal", "MEM": "mem",
	"MIA": "mia", "MIL": "mil", "MIN": "min", "NOP": "no", "NYK": "ny",
	"OKC": "okc", "ORL": "orl", "PHI": "phi", "PHO": "phx", "POR": "por",
	"SAC": "sac", "SAS": "sa", "TOR": "tor", "UTA": "utah", "WAS": "wsh",
}

var playerIDPattern = regexp.MustCompile(`/id/(\d+)`)

// RosterClient resolves merged players to ESPN numeric ids by scraping one
// roster page per team and fuzzy-matching names.
type RosterClient struct {
	fetcher *Fetcher
	logger  *logrus.Logger
	baseURL string
}

func NewRosterClient(fetcher *Fetcher, logger *logrus.Logger) *RosterClient {
	return &RosterClient{
		fetcher: fetcher,
		logger:  logger,
		baseURL: "https://www.espn.com",
	}
}

type rosterEntry struct {
	name string
	id   string
}

// ResolvePlayerIDs fetches each known team's roster exactly once and returns a
// player_name -> ESPN id map. A roster entry claims the first merged player on
// its team whose normalized name contains, is contained in, or equals the
// entry's normalized name; the leniency survives "Jr." suffixes and nickname
// variants at the cost of the occasional short-name false positive.
//
// Teams without a slug mapping and per-team fetch failures are logged and
// skipped; they cost matches, never the run.
func (c *RosterClient) ResolvePlayerIDs(ctx context.Context, players []models.Player) map[string]string {
	byTeam := make(map[string][]models.Player)
	for _, player := range players {
		byTeam[player.TeamAbbr] = append(byTeam[player.TeamAbbr], player)
	}

	ids := make(map[string]string)
	for team, teamPlayers := range byTeam {
		slug, ok := espnTeamSlugs[team]
		if !ok {
			c.logger.Warnf("No roster source mapping for team %q, skipping %d players", team, len(teamPlayers))
			continue
		}

		entries, err := c.fetchRoster(ctx, slug)
		if err != nil {
			c.logger.Warnf("Failed to fetch roster for team %s: %v", team, err)
			continue
		}

		c.matchTeam(entries, teamPlayers, ids)
	}

	return ids
}

func (c *RosterClient) fetchRoster(ctx context.Context, slug string) ([]rosterEntry, error) {
	url := fmt.Sprintf("%s/nba/team/roster/_/name/%s", c.baseURL, slug)
	doc, err := c.fetcher.GetDocument(ctx, url)
	if err != nil {
		return nil, err
	}

	var entries []rosterEntry
	seen := make(map[string]bool)
	doc.Find(`a[href*="/nba/player/_/id/"]`).Each(func(_ int, a *goquery.Selection) {
		name := strings.TrimSpace(a.Text())
		if name == "" {
			return
		}
		href, _ := a.Attr("href")
		match := playerIDPattern.FindStringSubmatch(href)
		if match == nil || seen[match[1]] {
			return
		}
		seen[match[1]] = true
		entries = append(entries, rosterEntry{name: name, id: match[1]})
	})

	return entries, nil
}

// matchTeam assigns ids in roster document order, first match wins. Unmatched
// roster entries and unmatched merged players simply stay out of the map.
func (c *RosterClient) matchTeam(entries []rosterEntry, players []models.Player, ids map[string]string) {
	for _, entry := range entries {
		rosterKey := NormalizeName(entry.name)
		if rosterKey == "" {
			continue
		}
		for _, player := range players {
			if _, taken := ids[player.PlayerName]; taken {
				continue
			}
			mergedKey := NormalizeName(player.PlayerName)
			if namesMatch(rosterKey, mergedKey) {
				if rosterKey != mergedKey {
					c.logger.Debugf("Loose roster match: %q (roster) ~ %q (stats)", entry.name, player.PlayerName)
				}
				ids[player.PlayerName] = entry.id
				break
			}
		}
	}
}

func namesMatch(a, b string) bool {
	return a == b || strings.Contains(a, b) || strings.Contains(b, a)
}
