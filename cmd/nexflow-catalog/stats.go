package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"

	"github.com/nexusai/nexflow/pkg/catalog"
	"github.com/nexusai/nexflow/pkg/cmd"
	"github.com/nexusai/nexflow/pkg/log"
	"github.com/nexusai/nexflow/pkg/models"
	"github.com/nexusai/nexflow/pkg/services"
)

// StatsCommand prints tier, category, complexity, and platform breakdowns
// for the built catalog.
func StatsCommand() *cli.Command {
	return &cli.Command{
		Name:    "stats",
		Aliases: []string{"s"},
		Usage:   "Print catalog breakdowns by tier, category, complexity, and platform",
		Flags:   catalogFlags(),
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("catalog-stats")

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

			summary := catalogService.Summary()

			fmt.Printf("Workflows: %d (%d free, %d paid, %d featured)\n",
				summary.Total, summary.Free, summary.Paid, summary.Featured)

			fmt.Println("\nBy complexity:")

			for _, complexity := range models.AllComplexities() {
				fmt.Printf("  %-14s %d\n", complexity, summary.ByComplexity[complexity])
			}

			fmt.Println("\nBy category:")

			for _, count := range catalogService.Categories() {
				fmt.Printf("  %-26s %d\n", count.Category, count.Count)
			}

			fmt.Printf("\nPlatforms (%d): ", len(summary.Platforms))

			for i, platform := range summary.Platforms {
				if i > 0 {
					fmt.Print(", ")
				}

				fmt.Print(platform)
			}

			fmt.Println()

			return nil
		},
	}
}
