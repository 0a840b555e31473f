package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/iojson"
)

// AddCmd implements the tick add command.
type AddCmd struct {
	flags *Flags
	app   *tick.App

	jsonOutput bool
}

// NewAddCmd creates a new add command.
func NewAddCmd(flags *Flags, app *tick.App) *AddCmd {
	return &AddCmd{flags: flags, app: app}
}

// Register adds the add command to the application.
func (cmd *AddCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "add",
		Usage:     "Add a new task",
		UsageText: "tick add <text>",
		Description: `Adds a task to the list. Text is trimmed and must be 1-100 characters.

Examples:
  tick add Buy milk
  tick add "Call the dentist"`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output the created task as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *AddCmd) run(ctx context.Context, c *cli.Command) error {
	text := strings.Join(c.Args().Slice(), " ")

	t, err := cmd.app.Tasks.Add(text)
	if err != nil {
		return fmt.Errorf("add task: %w", err)
	}

	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, t)
	}

	fmt.Fprintf(c.Root().Writer, "Added task #%d: %s\n", t.ID, t.Text)
	return nil
}
