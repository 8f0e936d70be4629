package scrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mwalsh-dev/statduel/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFetcher() *Fetcher {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewFetcher(5*time.Second, 1000, 100, logger)
}

const bosRosterFixture = `
<html><body>
<table>
<tr><td><a href="/nba/player/_/id/3917376/jayson-tatum">Jayson Tatum</a></td></tr>
<tr><td><a href="/nba/player/_/id/3917376/jayson-tatum"><img alt=""></a></td></tr>
<tr><td><a href="/nba/player/_/id/3064290/derrick-white">Derrick White</a></td></tr>
<tr><td><a href="/nba/player/_/id/4066354/tim-hardaway-jr">Tim Hardaway Jr.</a></td></tr>
</table>
</body></html>`

func TestResolvePlayerIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/nba/team/roster/_/name/bos" {
			w.Write([]byte(bosRosterFixture))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewRosterClient(testFetcher(), logrus.New())
	client.baseURL = srv.URL

	players := []models.Player{
		{PlayerName: "Jayson Tatum", TeamAbbr: "BOS"},
		{PlayerName: "Derrick White", TeamAbbr: "BOS"},
	}

	ids := client.ResolvePlayerIDs(context.Background(), players)
	require.Len(t, ids, 2)
	assert.Equal(t, "3917376", ids["Jayson Tatum"])
	assert.Equal(t, "3064290", ids["Derrick White"])
}

func TestResolvePlayerIDsFuzzySuffix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bosRosterFixture))
	}))
	defer srv.Close()

	client := NewRosterClient(testFetcher(), logrus.New())
	client.baseURL = srv.URL

	// Stats source drops the suffix the roster page carries.
	players := []models.Player{
		{PlayerName: "Tim Hardaway", TeamAbbr: "BOS"},
	}

	ids := client.ResolvePlayerIDs(context.Background(), players)
	require.Len(t, ids, 1)
	assert.Equal(t, "4066354", ids["Tim Hardaway"])
}

func TestResolvePlayerIDsUnknownTeamSkipped(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(bosRosterFixture))
	}))
	defer srv.Close()

	client := NewRosterClient(testFetcher(), logrus.New())
	client.baseURL = srv.URL

	players := []models.Player{
		{PlayerName: "Mystery Player", TeamAbbr: "XXX"},
	}

	ids := client.ResolvePlayerIDs(context.Background(), players)
	assert.Empty(t, ids)
	assert.Zero(t, requests, "no slug mapping means no fetch")
}

func TestFetchRosterDeduplicatesIDs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bosRosterFixture))
	}))
	defer srv.Close()

	client := NewRosterClient(testFetcher(), logrus.New())
	client.baseURL = srv.URL

	entries, err := client.fetchRoster(context.Background(), "bos")
	require.NoError(t, err)
	// Tatum appears twice in the markup (name link and image link) but his id
	// is collected once.
	require.Len(t, entries, 3)
	assert.Equal(t, "Jayson Tatum", entries[0].name)
	assert.Equal(t, "3917376", entries[0].id)
}

func TestNamesMatch(t *testing.T) {
	assert.True(t, namesMatch("jayson tatum", "jayson tatum"))
	assert.True(t, namesMatch("tim hardaway jr", "tim hardaway"))
	assert.True(t, namesMatch("tim hardaway", "tim hardaway jr"))
	assert.False(t, namesMatch("jayson tatum", "derrick white"))
}
