package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gridiron "gridiron-dashboard"
	"gridiron-dashboard/espn"
)

// newTestHandlers wires handlers against a stub ESPN server. The Temporal
// client stays nil, so workflow routes answer in demo mode.
func newTestHandlers(t *testing.T, espnHandler http.HandlerFunc) (*Handlers, http.Handler) {
	t.Helper()
	server := httptest.NewServer(espnHandler)
	t.Cleanup(server.Close)

	espnClient := espn.NewClient(
		espn.WithHTTPClient(server.Client()),
		espn.WithSiteBaseURL(server.URL),
		espn.WithCoreBaseURL(server.URL),
	)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	h := NewHandlers(ctx, espnClient, nil, nil)
	return h, h.Router()
}

func doJSON(t *testing.T, router http.Handler, method, target string, body io.Reader, v any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if v != nil {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
	}
	return rec
}

func stubESPN(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/scoreboard"):
			io.WriteString(w, `{
				"leagues": [{"id": "28", "abbreviation": "NFL", "calendar": [
					{"label": "Regular Season", "value": "2", "entries": [{"label": "Week 1", "value": "1"}]}
				]}],
				"season": {"type": 2, "year": 2025},
				"week": {"number": 1},
				"events": [{
					"id": "401671789",
					"date": "2025-09-07T17:00Z",
					"name": "Philadelphia Eagles at Detroit Lions",
					"shortName": "PHI @ DET",
					"competitions": [{
						"id": "401671789",
						"competitors": [
							{"homeAway": "home", "team": {"id": "8", "displayName": "Detroit Lions"}, "score": "0"},
							{"homeAway": "away", "team": {"id": "21", "displayName": "Philadelphia Eagles"}, "score": "0"}
						],
						"status": {"type": {"state": "in"}}
					}],
					"status": {"type": {"state": "in"}}
				}]
			}`)
		case strings.Contains(r.URL.Path, "/summary"):
			io.WriteString(w, `{
				"header": {
					"id": "401671789",
					"competitions": [{
						"status": {"type": {"state": "in"}},
						"competitors": [
							{"homeAway": "home", "team": {"id": "8"}, "score": "7"},
							{"homeAway": "away", "team": {"id": "21"}, "score": "0"}
						]
					}]
				},
				"winprobability": [{"homeWinPercentage": 0.64, "awayWinPercentage": 0.36}]
			}`)
		case strings.Contains(r.URL.Path, "/plays"):
			io.WriteString(w, `{"items": [
				{
					"id": "play-1",
					"sequenceNumber": 100,
					"type": {"id": "5", "text": "Rush"},
					"text": "D.Montgomery right guard for 4 yards.",
					"period": {"number": 1},
					"start": {"yardLine": 25, "team": {"id": "8"}},
					"end": {"yardLine": 29, "team": {"id": "8"}}
				}
			]}`)
		case strings.HasSuffix(r.URL.Path, "/roster"):
			io.WriteString(w, `{
				"team": {"id": "8", "displayName": "Detroit Lions"},
				"athletes": [
					{"position": "offense", "items": [
						{"id": "1", "fullName": "Jared Goff", "displayName": "Jared Goff", "jersey": "16", "position": {"abbreviation": "QB"}},
						{"id": "2", "fullName": "Amon-Ra St. Brown", "displayName": "Amon-Ra St. Brown", "jersey": "14", "position": {"abbreviation": "WR"}}
					]}
				]
			}`)
		case strings.Contains(r.URL.Path, "/teams/404"):
			io.WriteString(w, `{"team": {}}`)
		case strings.Contains(r.URL.Path, "/teams/8"):
			io.WriteString(w, `{"team": {"id": "8", "displayName": "Detroit Lions", "abbreviation": "DET"}}`)
		case strings.Contains(r.URL.Path, "/teams"):
			io.WriteString(w, `{"sports": [{"leagues": [{"teams": [
				{"team": {"id": "8", "displayName": "Detroit Lions", "location": "Detroit", "name": "Lions", "abbreviation": "DET"}},
				{"team": {"id": "21", "displayName": "Philadelphia Eagles", "location": "Philadelphia", "name": "Eagles", "abbreviation": "PHI"}}
			]}]}]}`)
		case strings.Contains(r.URL.Path, "/news"):
			io.WriteString(w, `{"articles": [
				{"headline": "Lions win opener", "published": "2025-09-07T21:00Z", "links": {"web": {"href": "https://example.com/a1"}}}
			]}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func TestHealth(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var body map[string]string
	rec := doJSON(t, router, http.MethodGet, "/health", nil, &body)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestGetScoreboard(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	// The first request starts the poller; the snapshot fills in shortly
	// after. A refresh makes the fetch synchronous and deterministic.
	var snap gridiron.Snapshot[*ScoreboardView]
	rec := doJSON(t, router, http.MethodPost, "/api/scoreboard/refresh", nil, &snap)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, gridiron.PollReady, snap.State)
	require.True(t, snap.HasData)
	assert.Equal(t, "Week 1", snap.Data.WeekLabel)
	assert.Equal(t, 1, snap.Data.LiveCount)
	require.Len(t, snap.Data.DateGroups, 1)
	assert.Len(t, snap.Data.DateGroups[0].Events, 1)
}

func TestGetScoreboard_BadLeague(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	rec := doJSON(t, router, http.MethodGet, "/api/scoreboard?league=cricket", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetGame(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var view GameView
	rec := doJSON(t, router, http.MethodGet, "/api/games/401671789", nil, &view)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, view.WinOdds)
	assert.InDelta(t, 0.64, view.WinOdds.HomeWinChance, 1e-9)
}

func TestGetGame_UpstreamFailure(t *testing.T) {
	_, router := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := doJSON(t, router, http.MethodGet, "/api/games/401671789", nil, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestGetGame_NotFound(t *testing.T) {
	_, router := newTestHandlers(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := doJSON(t, router, http.MethodGet, "/api/games/999", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetGamePlays(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var body struct {
		GameID string                    `json:"gameId"`
		League string                    `json:"league"`
		Plays  []gridiron.NormalizedPlay `json:"plays"`
		IsLive bool                      `json:"isLive"`
	}
	rec := doJSON(t, router, http.MethodGet, "/api/games/401671789/plays", nil, &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "401671789", body.GameID)
	assert.Equal(t, "nfl", body.League)
	assert.True(t, body.IsLive)
	require.Len(t, body.Plays, 1)
	assert.Equal(t, 4, body.Plays[0].YardsGained)
}

func TestGetTeams(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	t.Run("nfl listing carries divisions", func(t *testing.T) {
		var body struct {
			Teams         []espn.TeamDetail            `json:"teams"`
			Divisions     map[string][]espn.TeamDetail `json:"divisions"`
			DivisionOrder []string                     `json:"divisionOrder"`
		}
		rec := doJSON(t, router, http.MethodGet, "/api/teams", nil, &body)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, body.Teams, 2)
		assert.Equal(t, gridiron.NFLDivisions, body.DivisionOrder)
		assert.Len(t, body.Divisions["NFC North"], 1)
	})

	t.Run("search drops the division grouping", func(t *testing.T) {
		var body struct {
			Teams     []espn.TeamDetail            `json:"teams"`
			Divisions map[string][]espn.TeamDetail `json:"divisions"`
		}
		rec := doJSON(t, router, http.MethodGet, "/api/teams?q=eagles", nil, &body)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, body.Teams, 1)
		assert.Equal(t, "21", body.Teams[0].ID)
		assert.Nil(t, body.Divisions)
	})
}

func TestGetTeam(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var team espn.TeamDetail
	rec := doJSON(t, router, http.MethodGet, "/api/teams/8", nil, &team)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Detroit Lions", team.DisplayName)

	rec = doJSON(t, router, http.MethodGet, "/api/teams/404", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRoster(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	t.Run("full roster", func(t *testing.T) {
		var view RosterView
		rec := doJSON(t, router, http.MethodGet, "/api/teams/8/roster", nil, &view)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, view.Players, 2)
		require.Len(t, view.Positions, 2)
		assert.Equal(t, "QB", view.Positions[0].Abbreviation)
	})

	t.Run("position filter", func(t *testing.T) {
		var view RosterView
		rec := doJSON(t, router, http.MethodGet, "/api/teams/8/roster?position=WR", nil, &view)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, view.Players, 1)
		assert.Equal(t, "Amon-Ra St. Brown", view.Players[0].FullName)
		// Position tabs always reflect the full roster.
		assert.Len(t, view.Positions, 2)
	})

	t.Run("query filter", func(t *testing.T) {
		var view RosterView
		rec := doJSON(t, router, http.MethodGet, "/api/teams/8/roster?q=goff", nil, &view)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, view.Players, 1)
		assert.Equal(t, "Jared Goff", view.Players[0].FullName)
	})
}

func TestGetNews(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	// News has no refresh route; poll until the background fetch lands.
	require.Eventually(t, func() bool {
		var snap gridiron.Snapshot[*NewsView]
		rec := doJSON(t, router, http.MethodGet, "/api/news", nil, &snap)
		return rec.Code == http.StatusOK && snap.State == gridiron.PollReady
	}, 2*time.Second, 10*time.Millisecond)

	var snap gridiron.Snapshot[*NewsView]
	doJSON(t, router, http.MethodGet, "/api/news", nil, &snap)
	require.True(t, snap.HasData)
	require.Len(t, snap.Data.Articles, 1)
	assert.Equal(t, "Lions win opener", snap.Data.Articles[0].Headline)
}

func TestStartTracking_DemoMode(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var body map[string]string
	rec := doJSON(t, router, http.MethodPost, "/api/track",
		strings.NewReader(`{"league": "nfl", "teams": ["8"]}`), &body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body["workflowId"], "demo-workflow-")
	assert.Contains(t, body["message"], "Demo mode")
}

func TestStartTracking_Validation(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	rec := doJSON(t, router, http.MethodPost, "/api/track", strings.NewReader(`{"teams": ["8"]}`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/track", strings.NewReader(`not json`), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetWorkflows_DemoMode(t *testing.T) {
	_, router := newTestHandlers(t, stubESPN(t))

	var tracked []TrackedWorkflow
	rec := doJSON(t, router, http.MethodGet, "/api/workflows", nil, &tracked)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, tracked)
}
