package gridiron

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.temporal.io/sdk/testsuite"

	"gridiron-dashboard/espn"
)

func collectableGame(id, status string) Game {
	return Game{
		ID:        id,
		EventID:   id,
		League:    "nfl",
		StartTime: time.Now().Add(time.Hour),
		Status:    status,
		HomeTeam:  espn.Team{ID: "8", DisplayName: "Detroit Lions"},
		AwayTeam:  espn.Team{ID: "21", DisplayName: "Philadelphia Eagles"},
	}
}

func TestCollectGamesWorkflow(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	games := []Game{
		collectableGame("game-1", "pre"),
		collectableGame("game-2", "in"),
	}

	var a *Activities
	env.OnActivity(a.GetGames, mock.Anything, mock.Anything).Return(games, nil)
	env.OnActivity(a.StartGameWorkflow, mock.Anything, mock.Anything).Return(nil).Times(2)

	env.ExecuteWorkflow(CollectGamesWorkflow, TrackingRequest{
		Sport:  "football",
		League: "nfl",
		Teams:  []string{"8"},
	})

	assert.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var started int
	require.NoError(t, env.GetWorkflowResult(&started))
	assert.Equal(t, 2, started)
	env.AssertExpectations(t)
}

func TestCollectGamesWorkflow_SkipsFinishedGames(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	games := []Game{
		collectableGame("game-final", "post"),
		collectableGame("game-live", "in"),
		collectableGame("game-upcoming", "pre"),
	}

	var a *Activities
	env.OnActivity(a.GetGames, mock.Anything, mock.Anything).Return(games, nil)
	env.OnActivity(a.StartGameWorkflow, mock.Anything, mock.MatchedBy(func(game Game) bool {
		return game.ID != "game-final"
	})).Return(nil).Times(2)

	env.ExecuteWorkflow(CollectGamesWorkflow, TrackingRequest{League: "nfl"})

	assert.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var started int
	require.NoError(t, env.GetWorkflowResult(&started))
	assert.Equal(t, 2, started)
	env.AssertExpectations(t)
}

func TestCollectGamesWorkflow_NoGames(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	var a *Activities
	env.OnActivity(a.GetGames, mock.Anything, mock.Anything).Return([]Game{}, nil)

	env.ExecuteWorkflow(CollectGamesWorkflow, TrackingRequest{League: "college-football"})

	assert.True(t, env.IsWorkflowCompleted())
	require.NoError(t, env.GetWorkflowError())

	var started int
	require.NoError(t, env.GetWorkflowResult(&started))
	assert.Equal(t, 0, started)
}

func TestCollectGamesWorkflow_GetGamesFailure(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	var a *Activities
	env.OnActivity(a.GetGames, mock.Anything, mock.Anything).Return(nil, assert.AnError)

	env.ExecuteWorkflow(CollectGamesWorkflow, TrackingRequest{League: "nfl"})

	assert.True(t, env.IsWorkflowCompleted())
	assert.Error(t, env.GetWorkflowError())
}

func TestCollectGamesWorkflow_StartGameWorkflowFailure(t *testing.T) {
	testSuite := &testsuite.WorkflowTestSuite{}
	env := testSuite.NewTestWorkflowEnvironment()

	var a *Activities
	env.OnActivity(a.GetGames, mock.Anything, mock.Anything).
		Return([]Game{collectableGame("game-1", "pre")}, nil)
	env.OnActivity(a.StartGameWorkflow, mock.Anything, mock.Anything).Return(assert.AnError)

	env.ExecuteWorkflow(CollectGamesWorkflow, TrackingRequest{League: "nfl"})

	assert.True(t, env.IsWorkflowCompleted())
	assert.Error(t, env.GetWorkflowError())
}
