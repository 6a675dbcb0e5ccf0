package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.temporal.io/sdk/client"

	gridiron "gridiron-dashboard"
	"gridiron-dashboard/espn"
	"gridiron-dashboard/web"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, relying on environment variables")
	}

	// The Temporal connection is optional: without it the dashboard still
	// serves scores, but live-tracking workflow routes answer in demo mode.
	var temporalClient client.Client
	c, err := client.Dial(gridiron.GetClientOptions())
	if err != nil {
		logger.Warn("Unable to create Temporal client, workflow operations limited", "error", err)
	} else {
		temporalClient = c
		defer c.Close()
		logger.Info("Connected to Temporal server")
	}

	espnClient := espn.NewClient(
		espn.WithLogger(logger),
		espn.WithProxyPrefix(os.Getenv("ESPN_PROXY_PREFIX")),
	)

	handlers := web.NewHandlers(context.Background(), espnClient, temporalClient, logger)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting web server", "port", port)
	if err := http.ListenAndServe(":"+port, handlers.Router()); err != nil {
		logger.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
