package espn

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteRefURL(t *testing.T) {
	direct := NewClient()
	url := "https://sports.core.api.espn.com/v2/sports/football/leagues/nfl/athletes/12345"
	assert.Equal(t, url, direct.RewriteRefURL(url))

	proxied := NewClient(WithProxyPrefix("/api/espn"))
	assert.Equal(t, "/api/espn/v2/sports/football/leagues/nfl/athletes/12345", proxied.RewriteRefURL(url))

	// URLs outside the core API pass through untouched.
	other := "https://example.com/athletes/1"
	assert.Equal(t, other, proxied.RewriteRefURL(other))
}

func TestResolveScorers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/athletes/11":
			w.Write([]byte(`{"displayName": "Saquon Barkley", "headshot": {"href": "https://img/11.png"}}`))
		case "/positions/rb":
			w.Write([]byte(`{"abbreviation": "RB"}`))
		case "/athletes/22":
			w.WriteHeader(http.StatusNotFound)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer server.Close()

	client := NewClient(WithHTTPClient(server.Client()))

	plays := []PlayByPlayItem{
		{
			ID:         "td-1",
			ScoreValue: 6,
			Participants: []PlayParticipant{
				{Type: "rusher", Athlete: RefLink{Ref: server.URL + "/athletes/11"}},
				{Type: ParticipantScorer, Athlete: RefLink{Ref: server.URL + "/athletes/11"}, Position: RefLink{Ref: server.URL + "/positions/rb"}},
			},
		},
		{
			// Athlete lookup fails; play is absent from the result.
			ID:         "td-2",
			ScoreValue: 6,
			Participants: []PlayParticipant{
				{Type: ParticipantScorer, Athlete: RefLink{Ref: server.URL + "/athletes/22"}},
			},
		},
		{
			// Field goal, not a touchdown; never looked up.
			ID:         "fg-1",
			ScoreValue: 3,
			Participants: []PlayParticipant{
				{Type: ParticipantScorer, Athlete: RefLink{Ref: server.URL + "/athletes/99"}},
			},
		},
	}

	scorers := client.ResolveScorers(context.Background(), plays)

	require.Len(t, scorers, 1)
	scorer := scorers["td-1"]
	assert.Equal(t, "Saquon Barkley", scorer.Name)
	assert.Equal(t, "RB", scorer.Position)
	assert.Equal(t, "https://img/11.png", scorer.Headshot)
}

func TestResolveScorers_NoTouchdowns(t *testing.T) {
	client := NewClient()
	scorers := client.ResolveScorers(context.Background(), []PlayByPlayItem{
		{ID: "p1", ScoreValue: 0},
		{ID: "p2", ScoreValue: 3},
	})
	assert.Nil(t, scorers)
}

func TestResolveScorers_MissingRef(t *testing.T) {
	client := NewClient()
	scorers := client.ResolveScorers(context.Background(), []PlayByPlayItem{
		{ID: "td-1", ScoreValue: 6, Participants: []PlayParticipant{{Type: ParticipantScorer}}},
	})
	assert.Nil(t, scorers)
}
