package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"
	"go.temporal.io/api/workflowservice/v1"
	"go.temporal.io/sdk/client"

	gridiron "gridiron-dashboard"
)

// TrackedWorkflow is the dashboard's view of one running game workflow.
type TrackedWorkflow struct {
	WorkflowID  string    `json:"workflowId"`
	RunID       string    `json:"runId"`
	WorkflowURL string    `json:"workflowUrl,omitempty"`
	Status      string    `json:"status"`
	HomeTeam    string    `json:"homeTeam"`
	HomeScore   string    `json:"homeScore"`
	AwayTeam    string    `json:"awayTeam"`
	AwayScore   string    `json:"awayScore"`
	StartTime   time.Time `json:"startTime"`
	GameID      string    `json:"gameId"`
}

// StartTracking launches a CollectGamesWorkflow for the posted tracking
// request. Without a Temporal connection the request is acknowledged in
// demo mode so the dashboard still renders.
func (h *Handlers) StartTracking(w http.ResponseWriter, r *http.Request) {
	var req gridiron.TrackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.League == "" {
		writeError(w, http.StatusBadRequest, "league required")
		return
	}

	if h.temporalClient == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"workflowId": "demo-workflow-" + time.Now().Format("20060102-150405"),
			"message":    "Demo mode: tracking request received (Temporal server not connected)",
		})
		return
	}

	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("collect-%s-%s", req.League, time.Now().Format("20060102-150405")),
		TaskQueue: gridiron.TaskQueueName,
	}
	we, err := h.temporalClient.ExecuteWorkflow(r.Context(), options, gridiron.CollectGamesWorkflow, req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to start workflow: %v", err))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"workflowId": we.GetID(),
		"runId":      we.GetRunID(),
		"message":    "Tracking started successfully",
	})
}

// GetWorkflows lists running game workflows with their queried game state,
// sorted by kickoff time.
func (h *Handlers) GetWorkflows(w http.ResponseWriter, r *http.Request) {
	tracked := []TrackedWorkflow{}

	if h.temporalClient == nil {
		writeJSON(w, http.StatusOK, tracked)
		return
	}

	listRequest := &workflowservice.ListWorkflowExecutionsRequest{
		Query: "WorkflowId STARTS_WITH 'game-' AND ExecutionStatus = 'Running'",
	}
	resp, err := h.temporalClient.ListWorkflow(r.Context(), listRequest)
	if err != nil {
		h.logger.Warn("failed to list workflows", "error", err)
		writeJSON(w, http.StatusOK, tracked)
		return
	}

	for _, execution := range resp.Executions {
		item := TrackedWorkflow{
			WorkflowID:  execution.Execution.WorkflowId,
			RunID:       execution.Execution.RunId,
			Status:      execution.Status.String(),
			WorkflowURL: workflowURL(execution.Execution.WorkflowId, execution.Execution.RunId),
		}

		var game gridiron.Game
		result, err := h.temporalClient.QueryWorkflow(r.Context(), item.WorkflowID, item.RunID, "gameInfo")
		if err != nil {
			h.logger.Warn("failed to query workflow", "workflowID", item.WorkflowID, "error", err)
		} else if err := result.Get(&game); err != nil {
			h.logger.Warn("failed to decode query result", "workflowID", item.WorkflowID, "error", err)
		} else {
			item.HomeTeam = game.HomeTeam.DisplayName
			item.HomeScore = game.CurrentScore[game.HomeTeam.ID]
			item.AwayTeam = game.AwayTeam.DisplayName
			item.AwayScore = game.CurrentScore[game.AwayTeam.ID]
			item.StartTime = game.StartTime
			item.GameID = game.ID
		}

		tracked = append(tracked, item)
	}

	sort.Slice(tracked, func(i, j int) bool {
		return tracked[i].StartTime.Before(tracked[j].StartTime)
	})

	writeJSON(w, http.StatusOK, tracked)
}

// CancelWorkflow cancels one running workflow by ID.
func (h *Handlers) CancelWorkflow(w http.ResponseWriter, r *http.Request) {
	workflowID := chi.URLParam(r, "workflowID")
	if workflowID == "" {
		writeError(w, http.StatusBadRequest, "workflow ID required")
		return
	}

	if h.temporalClient == nil {
		writeJSON(w, http.StatusOK, map[string]string{
			"message": "Demo mode: cancel request received (Temporal server not connected)",
		})
		return
	}

	if err := h.temporalClient.CancelWorkflow(r.Context(), workflowID, ""); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to cancel workflow: %v", err))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Workflow cancelled successfully"})
}

// workflowURL points at the Temporal UI for a workflow run, cloud or local
// depending on TEMPORAL_HOST.
func workflowURL(workflowID, runID string) string {
	path := fmt.Sprintf("/namespaces/%s/workflows/%s/%s", os.Getenv("TEMPORAL_NAMESPACE"), workflowID, runID)
	host := os.Getenv("TEMPORAL_HOST")
	if host != "" && host != "localhost:7233" {
		return "https://cloud.temporal.io" + path
	}
	return "http://localhost:8233" + path
}
