package gridiron

import (
	"context"
	"crypto/tls"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"go.temporal.io/sdk/client"
	tlog "go.temporal.io/sdk/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// GetClientOptions builds Temporal client options from the environment.
// A local server (TEMPORAL_HOST unset or localhost:7233) needs no
// credentials; anything else requires TEMPORAL_API_KEY and uses TLS.
func GetClientOptions() client.Options {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	err := godotenv.Load()
	if err != nil {
		logger.Warn("No .env file found, relying on environment variables")
	}

	temporalAddress := os.Getenv("TEMPORAL_HOST")
	if temporalAddress == "" {
		temporalAddress = "localhost:7233"
	}

	temporalNamespace := os.Getenv("TEMPORAL_NAMESPACE")
	if temporalNamespace == "" {
		temporalNamespace = "default"
	}

	clientOptions := client.Options{
		HostPort:  temporalAddress,
		Namespace: temporalNamespace,
		Logger:    tlog.NewStructuredLogger(logger),
	}

	clientOptions.ConnectionOptions = client.ConnectionOptions{
		TLS: &tls.Config{},
		DialOptions: []grpc.DialOption{
			grpc.WithUnaryInterceptor(
				func(ctx context.Context, method string, req any, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
					return invoker(
						metadata.AppendToOutgoingContext(ctx, "temporal-namespace", temporalNamespace),
						method,
						req,
						reply,
						cc,
						opts...,
					)
				},
			),
		},
	}

	if temporalAddress != "localhost:7233" && temporalAddress != "host.docker.internal:7233" {
		temporalAPIKey := os.Getenv("TEMPORAL_API_KEY")
		if temporalAPIKey == "" {
			slog.Error("TEMPORAL_API_KEY environment variable is not set")
			os.Exit(1)
		}
		clientOptions.Credentials = client.NewAPIKeyStaticCredentials(temporalAPIKey)
	} else {
		clientOptions.ConnectionOptions.TLS = nil // no TLS against a local server
	}

	return clientOptions
}
