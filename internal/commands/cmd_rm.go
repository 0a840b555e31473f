package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/prompt"
	"github.com/colonyops/tick/internal/tick"
)

// RmCmd implements the tick rm command.
type RmCmd struct {
	flags     *Flags
	app       *tick.App
	confirmer prompt.Confirmer

	yes bool
}

// NewRmCmd creates a new rm command.
func NewRmCmd(flags *Flags, app *tick.App) *RmCmd {
	return &RmCmd{flags: flags, app: app, confirmer: prompt.Huh{}}
}

// Register adds the rm command to the application.
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "rm",
		Aliases:   []string{"delete"},
		Usage:     "Delete a task",
		UsageText: "tick rm <id> [--yes]",
		Description: `Deletes the task with the given id after confirmation.

Examples:
  tick rm 3
  tick rm 3 --yes`,
		Flags: []cli.Flag{
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

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	t, ok := cmd.app.Tasks.Get(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "No task with id %d\n", id)
		return nil
	}

	confirmer := cmd.confirmer
	if cmd.yes {
		confirmer = prompt.Always{}
	}

	confirmed, err := confirmer.Confirm(
		fmt.Sprintf("Delete task #%d?", t.ID),
		t.Text,
	)
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !confirmed {
		fmt.Fprintln(c.Root().Writer, "Aborted")
		return nil
	}

	cmd.app.Tasks.Delete(id)
	fmt.Fprintf(c.Root().Writer, "Deleted task #%d\n", id)
	return nil
}
