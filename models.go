package gridiron

import (
	"time"

	"gridiron-dashboard/espn"
)

// Game is the tracking view of a single event, flattened from the
// scoreboard payload for workflow state and notifications.
type Game struct {
	ID           string            `json:"id"`
	EventID      string            `json:"eventId"`
	Name         string            `json:"name"`
	ShortName    string            `json:"shortName"`
	League       string            `json:"league"`
	HomeTeam     espn.Team         `json:"homeTeam"`
	AwayTeam     espn.Team         `json:"awayTeam"`
	StartTime    time.Time         `json:"startTime"`
	CurrentScore map[string]string `json:"currentScore"` // team ID -> score
	Status       string            `json:"status"`
	StatusDetail string            `json:"statusDetail"`
	Odds         string            `json:"odds"`
}

// Live reports whether the game is currently in progress.
func (g Game) Live() bool {
	return g.Status == "in"
}

// Final reports whether the game has completed.
func (g Game) Final() bool {
	return g.Status == "post"
}

// ScoringUpdate describes a newly observed scoring play, carried from the
// game workflow to the notification activity.
type ScoringUpdate struct {
	GameID     string    `json:"gameId"`
	HomeTeam   string    `json:"homeTeam"`
	AwayTeam   string    `json:"awayTeam"`
	HomeScore  string    `json:"homeScore"`
	AwayScore  string    `json:"awayScore"`
	ScoredBy   string    `json:"scoredBy"`
	PlayText   string    `json:"playText"`
	ScoreValue int       `json:"scoreValue"`
	Quarter    int       `json:"quarter"`
	Clock      string    `json:"clock"`
	Timestamp  time.Time `json:"timestamp"`
}

// TrackingRequest selects which games a collection workflow should track.
// Empty Teams and Conferences means track everything on the scoreboard.
type TrackingRequest struct {
	Sport       string   `json:"sport"`
	League      string   `json:"league"`
	Teams       []string `json:"teams"`
	Conferences []string `json:"conferences"`
}

// Matches reports whether an event involves any requested team
// or conference. An unconstrained request matches every event.
func (r TrackingRequest) Matches(event espn.Event) bool {
	if len(r.Teams) == 0 && len(r.Conferences) == 0 {
		return true
	}
	for _, comp := range event.Competitions {
		for _, competitor := range comp.Competitors {
			for _, id := range r.Teams {
				if competitor.Team.ID == id || competitor.Team.Abbreviation == id {
					return true
				}
			}
			for _, conf := range r.Conferences {
				if competitor.Team.ConferenceID == conf {
					return true
				}
			}
		}
	}
	return false
}

// GameSnapshot bundles one polling pass over a live game: the summary
// document plus the normalized play list derived from play-by-play.
type GameSnapshot struct {
	Summary   *espn.GameSummary `json:"summary"`
	Plays     []NormalizedPlay  `json:"plays"`
	FetchedAt time.Time         `json:"fetchedAt"`
}
