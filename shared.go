package gridiron

import "time"

const TaskQueueName = "gridiron-dashboard-task-queue"

// GameWorkflowID builds the deterministic workflow ID for a game, so a game
// can only be tracked by one workflow at a time.
func GameWorkflowID(gameID string) string {
	return "game-" + gameID
}

// PollInterval is how often live data domains re-fetch from ESPN.
const PollInterval = 30 * time.Second
