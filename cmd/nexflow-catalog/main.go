// Package main provides the nexflow-catalog maintenance CLI.
package main

import (
	"context"
	"os"

	cli "github.com/urfave/cli/v3"
)

func main() {
	command := &cli.Command{
		Name:                  "nexflow-catalog",
		Usage:                 "Inspect and validate the marketplace catalog source",
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			ValidateCommand(),
			StatsCommand(),
		},
	}

	err := command.Run(context.Background(), os.Args)
	if err != nil {
		panic(err)
	}
}

func catalogFlags() []cli.Flag {
	return []cli.Flag{
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
	}
}
