package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/nexusai/nexflow/pkg/catalog"
	"github.com/nexusai/nexflow/pkg/cmd"
	"github.com/nexusai/nexflow/pkg/log"
	"github.com/nexusai/nexflow/pkg/otelhelper"
	"github.com/nexusai/nexflow/pkg/services"
)

const defaultPort = 9080

func main() {
	command := &cli.Command{
		Name:                  "nexflow-api",
		Usage:                 "Serve the workflow template marketplace",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "catalog-url",
				Usage:    "Catalog source URL (path to the raw workflows JSON file)",
				Required: true,
				Sources:  cli.EnvVars("CATALOG_URL"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("api")
			logger.InfoContext(ctx, "Initializing NexFlow API")

			if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
				if _, err := otelhelper.NewTracer(ctx, "nexflow-api"); err != nil {
					logger.WarnContext(ctx, "Failed to initialize tracing", "error", err)
				}
			}

			eventBus := cmd.NewEventBus(logger)
			defer func() {
				if err := eventBus.Close(); err != nil {
					logger.ErrorContext(ctx, "Failed to close event bus", "error", err)
				}
			}()

			source := cmd.NewPersistence(command.String("catalog-url"))
			defer func() {
				if err := source.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close catalog source", "error", err)
				}
			}()

			catalogService, err := services.NewCatalog(ctx, source, catalog.DefaultConfig(), eventBus, logger)
			if err != nil {
				return err
			}

			api := NewAPI(logger, catalogService)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}
