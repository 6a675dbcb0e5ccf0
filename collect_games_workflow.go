package gridiron

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// CollectGamesWorkflow fetches the scoreboard for a tracking request and
// spawns a GameWorkflow for every matching game that has not finished.
// Deterministic game workflow IDs make repeat collections idempotent.
func CollectGamesWorkflow(ctx workflow.Context, req TrackingRequest) (int, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Starting Collect Games Workflow", "league", req.League)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    30 * time.Second,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	var a *Activities
	var games []Game
	err := workflow.ExecuteActivity(ctx, a.GetGames, req).Get(ctx, &games)
	if err != nil {
		logger.Error("Failed to fetch games", "error", err)
		return 0, err
	}

	logger.Info("Fetched games", "count", len(games))

	started := 0
	for _, game := range games {
		if game.Final() {
			continue
		}
		err := workflow.ExecuteActivity(ctx, a.StartGameWorkflow, game).Get(ctx, nil)
		if err != nil {
			logger.Error("Failed to start game workflow", "gameID", game.ID, "error", err)
			return started, err
		}
		started++
	}

	logger.Info("Collect Games Workflow completed", "started", started)
	return started, nil
}
