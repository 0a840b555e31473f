package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/iojson"
)

// StatsCmd implements the tick stats command.
type StatsCmd struct {
	flags *Flags
	app   *tick.App

	jsonOutput bool
}

// NewStatsCmd creates a new stats command.
func NewStatsCmd(flags *Flags, app *tick.App) *StatsCmd {
	return &StatsCmd{flags: flags, app: app}
}

// Register adds the stats command to the application.
func (cmd *StatsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "stats",
		Usage:     "Show task counts",
		UsageText: "tick stats [--json]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *StatsCmd) run(ctx context.Context, c *cli.Command) error {
	st := cmd.app.Tasks.Stats()

	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, st)
	}

	fmt.Fprintf(c.Root().Writer, "%d total / %d active / %d completed\n", st.Total, st.Active, st.Completed)
	return nil
}
