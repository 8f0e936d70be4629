package scrape

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const perGameFixture = `
<html><body>
<table id="per_game_stats">
<thead><tr><th data-stat="player">Player</th></tr></thead>
<tbody>
<tr>
  <td data-stat="player">Luka Dončić</td>
  <td data-stat="team_name_abbr">2TM</td>
  <td data-stat="pts_per_g">28.1</td>
  <td data-stat="ast_per_g">7.8</td>
</tr>
<tr>
  <td data-stat="player">Luka Dončić</td>
  <td data-stat="team_name_abbr">DAL</td>
  <td data-stat="pts_per_g">31.5</td>
  <td data-stat="ast_per_g">8.1</td>
</tr>
<tr>
  <td data-stat="player">Luka Dončić</td>
  <td data-stat="team_name_abbr">LAL</td>
  <td data-stat="pts_per_g">26.0</td>
  <td data-stat="ast_per_g">7.5</td>
</tr>
<tr class="thead"><td data-stat="player">Player</td></tr>
<tr>
  <td data-stat="player">Stephen Curry</td>
  <td data-stat="team_name_abbr">GSW</td>
  <td data-stat="pts_per_g">26.4</td>
</tr>
<tr>
  <td data-stat="player"></td>
  <td data-stat="team_name_abbr"></td>
  <td data-stat="pts_per_g">15.2</td>
</tr>
</tbody>
</table>
</body></html>`

func fixtureDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func fixtureSource() TableSource {
	return TableSource{
		Name:      "per_game",
		TableID:   "per_game_stats",
		PlayerCol: "player",
		TeamCol:   "team_name_abbr",
		Columns: map[string]string{
			"points_per_game":  "pts_per_g",
			"assists_per_game": "ast_per_g",
		},
	}
}

func TestExtractRows(t *testing.T) {
	doc := fixtureDoc(t, perGameFixture)
	rows := ExtractRows(doc, fixtureSource())

	// Three Dončić rows plus Curry; the header row and the nameless
	// league-average row are dropped.
	require.Len(t, rows, 4)

	assert.Equal(t, "Luka Dončić", rows[0].PlayerName)
	assert.Equal(t, "", rows[0].TeamAbbr, "2TM aggregate marker maps to empty team")
	assert.Equal(t, "28.1", rows[0].Stats["points_per_game"])
	assert.Equal(t, "7.8", rows[0].Stats["assists_per_game"])

	assert.Equal(t, "DAL", rows[1].TeamAbbr)
	assert.Equal(t, "LAL", rows[2].TeamAbbr)

	assert.Equal(t, "Stephen Curry", rows[3].PlayerName)
	assert.Equal(t, "GSW", rows[3].TeamAbbr)
}

func TestExtractRowsMissingColumn(t *testing.T) {
	doc := fixtureDoc(t, perGameFixture)
	rows := ExtractRows(doc, fixtureSource())
	require.Len(t, rows, 4)

	// Curry's row has no ast_per_g cell; the key still exists with "".
	assists, ok := rows[3].Stats["assists_per_game"]
	assert.True(t, ok)
	assert.Equal(t, "", assists)
}

func TestExtractRowsWrongTableID(t *testing.T) {
	doc := fixtureDoc(t, perGameFixture)
	src := fixtureSource()
	src.TableID = "totals_stats"

	assert.Empty(t, ExtractRows(doc, src))
}

func TestIsAggregateTeam(t *testing.T) {
	assert.True(t, isAggregateTeam(""))
	assert.True(t, isAggregateTeam("TOT"))
	assert.True(t, isAggregateTeam("2TM"))
	assert.True(t, isAggregateTeam("3TM"))

	assert.False(t, isAggregateTeam("DAL"))
	assert.False(t, isAggregateTeam("ATL"))
	assert.False(t, isAggregateTeam("1TM"))
}

func TestSourceURLs(t *testing.T) {
	assert.Equal(t, "https://www.basketball-reference.com/leagues/NBA_2025_per_game.html", PerGameSource("2025").URL)
	assert.Equal(t, "https://www.basketball-reference.com/leagues/NBA_2025_totals.html", TotalsSource("2025").URL)
	assert.Equal(t, "https://www.basketball-reference.com/leagues/NBA_2025_advanced.html", AdvancedSource("2025").URL)
}
