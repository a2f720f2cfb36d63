package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/evelynko/carnet/internal/advisor"
	"github.com/evelynko/carnet/internal/cli"
	"github.com/evelynko/carnet/internal/trip"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env in the working directory, read before the CARNET_*
	// variables are consulted. Absence is not an error.
	_ = godotenv.Load()

	engine, err := trip.NewEngine(trip.SeedItinerary(), trip.SeedEssentials(), trip.NewUUIDGenerator())
	if err != nil {
		return fmt.Errorf("seeding trip state: %w", err)
	}

	app := &cli.App{Engine: engine}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire the advisory collaborator only when enabled.
	cfg := advisor.LoadConfig()
	if cfg.Enabled {
		var observer advisor.Observer = advisor.NoopObserver{}
		if cfg.LogCalls {
			observer = advisor.NewLogObserver(os.Stderr)
		}
		app.Advisor = advisor.NewOllamaClient(cfg, observer)
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
