package gridiron

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/slack-go/slack"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"

	"gridiron-dashboard/espn"
)

// Activities bundles the worker-side activity implementations around the
// ESPN client and the Temporal client used to spawn per-game workflows.
type Activities struct {
	ESPN     *espn.Client
	Temporal client.Client
}

func NewActivities(espnClient *espn.Client, temporalClient client.Client) *Activities {
	return &Activities{ESPN: espnClient, Temporal: temporalClient}
}

// GetGames fetches the current scoreboard and flattens the events matching
// the tracking request into Game records.
func (a *Activities) GetGames(ctx context.Context, req TrackingRequest) ([]Game, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Fetching games from ESPN API", "league", req.League)

	league := espn.League(req.League)
	if !league.Valid() {
		return nil, fmt.Errorf("unsupported league %q", req.League)
	}

	scoreboard, err := a.ESPN.Scoreboard(ctx, league)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch games: %w", err)
	}

	var games []Game
	for _, event := range scoreboard.Events {
		if !req.Matches(event) {
			continue
		}
		game, ok := BuildGame(event, string(league))
		if !ok {
			logger.Warn("Skipping event without two competitors", "eventID", event.ID)
			continue
		}
		games = append(games, game)
	}

	logger.Info("Fetched games", "count", len(games))
	return games, nil
}

// BuildGame flattens one scoreboard event into a Game. Events without two
// competitors cannot be tracked and report ok=false.
func BuildGame(event espn.Event, league string) (Game, bool) {
	if len(event.Competitions) == 0 || len(event.Competitions[0].Competitors) < 2 {
		return Game{}, false
	}
	comp := event.Competitions[0]

	game := Game{
		ID:           comp.ID,
		EventID:      event.ID,
		Name:         event.Name,
		ShortName:    event.ShortName,
		League:       league,
		StartTime:    event.Date.Time,
		CurrentScore: make(map[string]string),
		Status:       comp.Status.Type.State,
		StatusDetail: comp.Status.Type.ShortDetail,
	}

	for _, competitor := range comp.Competitors {
		game.CurrentScore[competitor.Team.ID] = competitor.Score
		switch competitor.HomeAway {
		case "home":
			game.HomeTeam = competitor.Team
		case "away":
			game.AwayTeam = competitor.Team
		}
	}
	if len(comp.Odds) > 0 {
		game.Odds = comp.Odds[0].Details
	}
	return game, true
}

// StartGameWorkflow launches a GameWorkflow for one game. Starting the same
// game twice is a no-op thanks to the deterministic workflow ID.
func (a *Activities) StartGameWorkflow(ctx context.Context, game Game) error {
	logger := activity.GetLogger(ctx)
	logger.Info("Starting game workflow", "gameID", game.ID)

	options := client.StartWorkflowOptions{
		ID:        GameWorkflowID(game.ID),
		TaskQueue: TaskQueueName,
	}
	we, err := a.Temporal.ExecuteWorkflow(ctx, options, GameWorkflow, game)
	if err != nil {
		return fmt.Errorf("unable to execute workflow: %w", err)
	}
	logger.Info("Started workflow", "WorkflowID", we.GetID(), "RunID", we.GetRunID())
	return nil
}

// SnapshotRequest identifies the game a FetchGameSnapshot call targets.
type SnapshotRequest struct {
	League string `json:"league"`
	GameID string `json:"gameId"`
}

// FetchGameSnapshot pulls the summary and play-by-play for a game and
// returns the normalized view. Scorer identities resolve best-effort.
func (a *Activities) FetchGameSnapshot(ctx context.Context, req SnapshotRequest) (*GameSnapshot, error) {
	logger := activity.GetLogger(ctx)

	league := espn.League(req.League)
	summary, err := a.ESPN.GameSummary(ctx, league, req.GameID)
	if err != nil {
		return nil, err
	}

	snapshot := &GameSnapshot{Summary: summary, FetchedAt: time.Now().UTC()}

	pbp, err := a.ESPN.PlayByPlay(ctx, league, req.GameID)
	if err != nil {
		// Summary alone is still useful; play data can lag early in a game.
		logger.Warn("Play-by-play unavailable", "gameID", req.GameID, "error", err)
		return snapshot, nil
	}

	homeID, awayID := summaryTeamIDs(summary)
	scorers := a.ESPN.ResolveScorers(ctx, pbp.Items)
	snapshot.Plays = NormalizePlays(pbp.Items, homeID, awayID, scorers)
	return snapshot, nil
}

func summaryTeamIDs(summary *espn.GameSummary) (homeID, awayID string) {
	if summary == nil || len(summary.Header.Competitions) == 0 {
		return "", ""
	}
	for _, competitor := range summary.Header.Competitions[0].Competitors {
		switch competitor.HomeAway {
		case "home":
			homeID = competitor.Team.ID
		case "away":
			awayID = competitor.Team.ID
		}
	}
	return homeID, awayID
}

// SendScoringNotification posts a scoring update to the Slack webhook named
// by SLACK_WEBHOOK_URL. Without a webhook configured it logs the message
// instead, so local runs work without Slack.
func (a *Activities) SendScoringNotification(ctx context.Context, update ScoringUpdate) error {
	logger := activity.GetLogger(ctx)

	message := fmt.Sprintf("🏈 %s!\n%s vs %s\n%s\nScore: %s - %s\nQ%d %s",
		scoreLabel(update.ScoreValue),
		update.HomeTeam, update.AwayTeam,
		update.PlayText,
		update.HomeScore, update.AwayScore,
		update.Quarter, update.Clock)

	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")
	if webhookURL == "" {
		logger.Info("Slack notification (no webhook configured)", "message", message)
		return nil
	}

	err := slack.PostWebhookContext(ctx, webhookURL, &slack.WebhookMessage{Text: message})
	if err != nil {
		return fmt.Errorf("failed to send Slack notification: %w", err)
	}
	logger.Info("Sent scoring notification", "gameID", update.GameID)
	return nil
}

func scoreLabel(scoreValue int) string {
	switch scoreValue {
	case 6:
		return "Touchdown"
	case 3:
		return "Field Goal"
	case 2:
		return "Safety"
	case 1:
		return "Extra Point"
	default:
		return "Score Update"
	}
}
