package main

import (
	"context"

	cli "github.com/urfave/cli/v3"

	"github.com/nexusai/nexflow/pkg/catalog"
	"github.com/nexusai/nexflow/pkg/cmd"
	"github.com/nexusai/nexflow/pkg/log"
	"github.com/nexusai/nexflow/pkg/services"
)

// ValidateCommand loads and builds the catalog, failing on a source that is
// not a JSON array. A clean exit means every record mapped onto the
// canonical model.
func ValidateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Load and build the catalog, reporting batch-level errors",
		Flags:   catalogFlags(),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("catalog-validate")

			source := cmd.NewPersistence(command.String("catalog-url"))
			defer func() {
				if err := source.Close(ctx); err != nil {
					logger.ErrorContext(ctx, "Failed to close catalog source", "error", err)
				}
			}()

			catalogService, err := services.NewCatalog(ctx, source, catalog.DefaultConfig(), nil, logger)
			if err != nil {
				return err
			}

			logger.InfoContext(ctx, "Catalog is valid",
				"workflows", len(catalogService.Workflows()),
				"platforms", len(catalogService.AvailablePlatforms()),
			)

			return nil
		},
	}
}
