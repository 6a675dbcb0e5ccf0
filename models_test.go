package gridiron

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gridiron-dashboard/espn"
)

func matchableEvent() espn.Event {
	return espn.Event{
		ID: "401671789",
		Competitions: []espn.Competition{
			{
				Competitors: []espn.Competitor{
					{Team: espn.Team{ID: "8", Abbreviation: "DET", ConferenceID: "12"}},
					{Team: espn.Team{ID: "21", Abbreviation: "PHI", ConferenceID: "13"}},
				},
			},
		},
	}
}

func TestTrackingRequest_Matches(t *testing.T) {
	event := matchableEvent()

	tests := []struct {
		name string
		req  TrackingRequest
		want bool
	}{
		{"empty request matches everything", TrackingRequest{}, true},
		{"team ID", TrackingRequest{Teams: []string{"8"}}, true},
		{"team abbreviation", TrackingRequest{Teams: []string{"PHI"}}, true},
		{"conference", TrackingRequest{Conferences: []string{"13"}}, true},
		{"team and conference both miss", TrackingRequest{Teams: []string{"2"}, Conferences: []string{"5"}}, false},
		{"one of several teams", TrackingRequest{Teams: []string{"2", "12", "21"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Matches(event))
		})
	}
}

func TestGameStatus(t *testing.T) {
	assert.True(t, Game{Status: "in"}.Live())
	assert.False(t, Game{Status: "in"}.Final())
	assert.True(t, Game{Status: "post"}.Final())
	assert.False(t, Game{Status: "pre"}.Live())
	assert.False(t, Game{Status: "pre"}.Final())
}

func TestGameWorkflowID(t *testing.T) {
	assert.Equal(t, "game-401671789", GameWorkflowID("401671789"))
}
