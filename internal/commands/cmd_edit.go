package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
)

// EditCmd implements the tick edit command.
type EditCmd struct {
	flags *Flags
	app   *tick.App
}

// NewEditCmd creates a new edit command.
func NewEditCmd(flags *Flags, app *tick.App) *EditCmd {
	return &EditCmd{flags: flags, app: app}
}

// Register adds the edit command to the application.
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Replace the text of a task",
		UsageText: "tick edit <id> <text>",
		Description: `Replaces the text on the task with the given id. The same validation
rules apply as for add: trimmed, 1-100 characters.

Examples:
  tick edit 3 Buy oat milk instead`,
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := parseTaskID(c)
	if err != nil {
		return err
	}

	text := strings.Join(c.Args().Tail(), " ")

	if _, ok := cmd.app.Tasks.Get(id); !ok {
		fmt.Fprintf(os.Stderr, "No task with id %d\n", id)
		return nil
	}

	if err := cmd.app.Tasks.Edit(id, text); err != nil {
		return fmt.Errorf("edit task: %w", err)
	}

	t, _ := cmd.app.Tasks.Get(id)
	fmt.Fprintf(c.Root().Writer, "Updated task #%d: %s\n", t.ID, t.Text)
	return nil
}
