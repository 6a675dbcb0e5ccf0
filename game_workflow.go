package gridiron

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// RefreshSignal asks a running game workflow to poll immediately instead of
// waiting out the current interval.
const RefreshSignal = "refresh"

// GameWorkflow tracks a single game: it waits for kickoff, polls the summary
// and play-by-play while the game is in progress, answers queries from the
// web layer, and sends a notification for every new scoring play. The
// workflow completes once the game reaches the "post" state.
func GameWorkflow(ctx workflow.Context, game Game) (string, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting Game Workflow", "gameID", game.ID, "homeTeam", game.HomeTeam.DisplayName, "awayTeam", game.AwayTeam.DisplayName)

	var plays []NormalizedPlay

	err := workflow.SetQueryHandler(ctx, "gameInfo", func() (Game, error) {
		return game, nil
	})
	if err != nil {
		logger.Error("Failed to set query handler", "error", err)
		return "", err
	}
	err = workflow.SetQueryHandler(ctx, "plays", func() ([]NormalizedPlay, error) {
		return plays, nil
	})
	if err != nil {
		logger.Error("Failed to set query handler", "error", err)
		return "", err
	}

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	refreshCh := workflow.GetSignalChannel(ctx, RefreshSignal)

	// Wait until kickoff; a refresh signal starts polling early.
	if game.StartTime.After(workflow.Now(ctx)) {
		logger.Info("Waiting for game to start", "gameID", game.ID, "startTime", game.StartTime)
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, game.StartTime.Sub(workflow.Now(ctx)))
		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.AddReceive(refreshCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
		})
		selector.Select(ctx)
		cancelTimer()
	}

	logger.Info("Game monitoring started", "gameID", game.ID)

	var a *Activities
	notified := make(map[string]bool)
	seeded := false

	// Hard stop 6 hours past kickoff in case the feed never reports "post".
	deadline := game.StartTime.Add(6 * time.Hour)

	for game.Status != "post" && workflow.Now(ctx).Before(deadline) {
		var snapshot GameSnapshot
		err := workflow.ExecuteActivity(ctx, a.FetchGameSnapshot, SnapshotRequest{
			League: game.League,
			GameID: game.EventID,
		}).Get(ctx, &snapshot)
		if err != nil {
			logger.Error("Failed to fetch game snapshot", "gameID", game.ID, "error", err)
		} else {
			applySnapshot(&game, &snapshot)
			plays = snapshot.Plays

			updates := newScoringUpdates(game, plays, notified, seeded, workflow.Now(ctx))
			seeded = true
			for _, update := range updates {
				err = workflow.ExecuteActivity(ctx, a.SendScoringNotification, update).Get(ctx, nil)
				if err != nil {
					logger.Error("Failed to send notification", "gameID", game.ID, "error", err)
				}
			}
		}

		if game.Status == "post" {
			break
		}

		// Sleep out the interval, cut short by a refresh signal.
		timerCtx, cancelTimer := workflow.WithCancel(ctx)
		timer := workflow.NewTimer(timerCtx, PollInterval)
		selector := workflow.NewSelector(ctx)
		selector.AddFuture(timer, func(f workflow.Future) {})
		selector.AddReceive(refreshCh, func(c workflow.ReceiveChannel, more bool) {
			c.Receive(ctx, nil)
		})
		selector.Select(ctx)
		cancelTimer()
	}

	logger.Info("Game workflow completed", "gameID", game.ID)
	finalScore := fmt.Sprintf("Final score: %s %s - %s %s",
		game.HomeTeam.Abbreviation, game.CurrentScore[game.HomeTeam.ID],
		game.AwayTeam.Abbreviation, game.CurrentScore[game.AwayTeam.ID])
	return finalScore, nil
}

// applySnapshot folds the fetched summary into the tracked game state.
func applySnapshot(game *Game, snapshot *GameSnapshot) {
	if snapshot.Summary == nil || len(snapshot.Summary.Header.Competitions) == 0 {
		return
	}
	comp := snapshot.Summary.Header.Competitions[0]
	game.Status = comp.Status.Type.State
	game.StatusDetail = comp.Status.Type.ShortDetail
	for _, competitor := range comp.Competitors {
		game.CurrentScore[competitor.Team.ID] = competitor.Score
	}
}

// newScoringUpdates returns notifications for scoring plays not yet seen,
// marking them in the notified set. On the seeding pass plays already on the
// board are marked without notifying, so mid-game restarts stay quiet.
func newScoringUpdates(game Game, plays []NormalizedPlay, notified map[string]bool, seeded bool, now time.Time) []ScoringUpdate {
	var updates []ScoringUpdate
	for _, play := range plays {
		if !play.IsScoring || play.ScoreValue == 0 || notified[play.ID] {
			continue
		}
		notified[play.ID] = true
		if !seeded {
			continue
		}

		update := ScoringUpdate{
			GameID:     game.ID,
			HomeTeam:   game.HomeTeam.DisplayName,
			AwayTeam:   game.AwayTeam.DisplayName,
			HomeScore:  fmt.Sprintf("%d", play.HomeScore),
			AwayScore:  fmt.Sprintf("%d", play.AwayScore),
			PlayText:   play.Description,
			ScoreValue: play.ScoreValue,
			Quarter:    play.Quarter,
			Clock:      play.Clock,
			Timestamp:  now,
		}
		if play.Scorer != nil {
			update.ScoredBy = play.Scorer.Name
		}
		updates = append(updates, update)
	}
	return updates
}
