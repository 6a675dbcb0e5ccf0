package main

import (
	"log"
	"os"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/worker"

	gridiron "gridiron-dashboard"
	"gridiron-dashboard/espn"
)

func main() {
	c, err := client.Dial(gridiron.GetClientOptions())
	if err != nil {
		log.Fatalln("Unable to create Temporal client", err)
	}
	defer c.Close()

	taskQueue := os.Getenv("TASK_QUEUE")
	if taskQueue == "" {
		taskQueue = gridiron.TaskQueueName
	}

	w := worker.New(c, taskQueue, worker.Options{})

	w.RegisterWorkflow(gridiron.CollectGamesWorkflow)
	w.RegisterWorkflow(gridiron.GameWorkflow)

	espnClient := espn.NewClient(espn.WithProxyPrefix(os.Getenv("ESPN_PROXY_PREFIX")))
	activities := gridiron.NewActivities(espnClient, c)
	w.RegisterActivity(activities)

	log.Println("Starting Temporal worker for gridiron dashboard...")
	err = w.Run(worker.InterruptCh())
	if err != nil {
		log.Fatalln("Unable to start worker", err)
	}
}
