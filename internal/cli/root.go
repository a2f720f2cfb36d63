package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/evelynko/carnet/internal/advisor"
	"github.com/evelynko/carnet/internal/cli/formatter"
	"github.com/evelynko/carnet/internal/trip"
)

// App bundles the trip engine and the optional advisory collaborator for
// CLI commands and the TUI.
type App struct {
	Engine  *trip.Engine
	Advisor advisor.Advisor

	// IsInteractive reports whether stdin is a terminal. The TUI only
	// starts interactively; otherwise the root command prints the ledger
	// report.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "carnet" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:          "carnet",
		Short:        "Personal trip planner: itinerary, expenses, essentials",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				fmt.Fprint(cmd.OutOrStdout(), renderLedgerReport(app))
				return nil
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newLedgerCmd(app),
		newItineraryCmd(app),
		newProgressCmd(app),
	)

	return root
}

// runTUI starts the interactive interface.
func runTUI(app *App) error {
	state := &SharedState{Engine: app.Engine, Advisor: app.Advisor}
	p := tea.NewProgram(newAppModel(state), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func renderLedgerReport(app *App) string {
	return formatter.FormatLedgerReport(app.Engine.GroupedExpenses(), app.Engine.Total())
}

func newLedgerCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "ledger",
		Short: "Print the grouped expense ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), renderLedgerReport(app))
			return nil
		},
	}
}

func newItineraryCmd(app *App) *cobra.Command {
	var day int
	cmd := &cobra.Command{
		Use:   "itinerary",
		Short: "Print day summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			days := app.Engine.Days()
			if flagChanged(cmd.Flags(), "day") {
				d, err := app.Engine.Day(day - 1)
				if err != nil {
					return fmt.Errorf("day %d: not in itinerary", day)
				}
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItineraryReport(days[d.Day-1:d.Day]))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatItineraryReport(days))
			return nil
		},
	}
	cmd.Flags().IntVar(&day, "day", 0, "show a single day (1-based)")
	return cmd
}

func newProgressCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress",
		Short: "Print the essentials checklist and completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(),
				formatter.FormatEssentialsReport(app.Engine.Essentials(), app.Engine.Progress()))
			return nil
		},
	}
}

// flagChanged reports whether the user set the named flag explicitly.
func flagChanged(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
