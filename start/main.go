package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"go.temporal.io/sdk/client"

	gridiron "gridiron-dashboard"
)

func main() {
	league := flag.String("league", "nfl", "league to track (nfl or college-football)")
	teams := flag.String("teams", "", "comma-separated team IDs or abbreviations to track")
	conferences := flag.String("conferences", "", "comma-separated conference IDs to track")
	flag.Parse()

	c, err := client.Dial(gridiron.GetClientOptions())
	if err != nil {
		log.Fatalln("Unable to create client", err)
	}
	defer c.Close()

	req := gridiron.TrackingRequest{
		Sport:  "football",
		League: *league,
	}
	if *teams != "" {
		req.Teams = strings.Split(*teams, ",")
	}
	if *conferences != "" {
		req.Conferences = strings.Split(*conferences, ",")
	}

	workflowID := fmt.Sprintf("collect-%s-%s", req.League, time.Now().Format("20060102-150405"))
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: gridiron.TaskQueueName,
	}

	we, err := c.ExecuteWorkflow(context.Background(), options, gridiron.CollectGamesWorkflow, req)
	if err != nil {
		log.Fatalln("Unable to execute workflow", err)
	}
	log.Println("Started workflow", "WorkflowID", we.GetID(), "RunID", we.GetRunID())
}
