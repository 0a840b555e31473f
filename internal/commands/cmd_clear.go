package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/prompt"
	"github.com/colonyops/tick/internal/tick"
)

// ClearCmd implements the tick clear command.
type ClearCmd struct {
	flags     *Flags
	app       *tick.App
	confirmer prompt.Confirmer

	all bool
	yes bool
}

// NewClearCmd creates a new clear command.
func NewClearCmd(flags *Flags, app *tick.App) *ClearCmd {
	return &ClearCmd{flags: flags, app: app, confirmer: prompt.Huh{}}
}

// Register adds the clear command to the application.
func (cmd *ClearCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "clear",
		Usage:     "Remove completed tasks, or everything with --all",
		UsageText: "tick clear [--all] [--yes]",
		Description: `Removes all completed tasks after confirmation. With --all the entire
list is emptied.

Examples:
  tick clear
  tick clear --all --yes`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "all",
				Usage:       "remove every task, not just completed ones",
				Destination: &cmd.all,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "skip the confirmation prompt",
				Destination: &cmd.yes,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ClearCmd) run(ctx context.Context, c *cli.Command) error {
	st := cmd.app.Tasks.Stats()

	title := fmt.Sprintf("Remove %d completed task(s)?", st.Completed)
	if cmd.all {
		title = fmt.Sprintf("Remove all %d task(s)?", st.Total)
	}

	if (cmd.all && st.Total == 0) || (!cmd.all && st.Completed == 0) {
		fmt.Fprintln(c.Root().Writer, "Nothing to clear")
		return nil
	}

	confirmer := cmd.confirmer
	if cmd.yes {
		confirmer = prompt.Always{}
	}

	confirmed, err := confirmer.Confirm(title, "This cannot be undone.")
	if err != nil {
		return fmt.Errorf("confirm clear: %w", err)
	}
	if !confirmed {
		fmt.Fprintln(c.Root().Writer, "Aborted")
		return nil
	}

	var removed int
	if cmd.all {
		removed = cmd.app.Tasks.ClearAll()
	} else {
		removed = cmd.app.Tasks.ClearCompleted()
	}

	fmt.Fprintf(c.Root().Writer, "Removed %d task(s)\n", removed)
	return nil
}
