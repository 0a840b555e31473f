package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
)

// ToggleCmd implements the tick toggle command.
type ToggleCmd struct {
	flags *Flags
	app   *tick.App
}

// NewToggleCmd creates a new toggle command.
func NewToggleCmd(flags *Flags, app *tick.App) *ToggleCmd {
	return &ToggleCmd{flags: flags, app: app}
}

// Register adds the toggle command to the application.
func (cmd *ToggleCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "toggle",
		Aliases:   []string{"done"},
		Usage:     "Toggle a task between done and not done",
		UsageText: "tick toggle <id>",
		Description: `Flips the completed flag on the task with the given id.

Examples:
  tick toggle 3`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ToggleCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	t, ok := cmd.app.Tasks.Toggle(id)
	if !ok {
		// Absent ids are a no-op, not an error.
		fmt.Fprintf(os.Stderr, "No task with id %d\n", id)
		return nil
	}

	state := "not done"
	if t.Completed {
		state = "done"
	}
	fmt.Fprintf(c.Root().Writer, "Task #%d is now %s: %s\n", t.ID, state, t.Text)
	return nil
}

// parseTaskID reads the first positional argument as a task id.
func parseTaskID(c *cli.Command) (int64, error) {
	arg := c.Args().First()
	if arg == "" {
		return 0, fmt.Errorf("missing task id. Run 'tick ls' to see ids")
	}

	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q", arg)
	}
	return id, nil
}
