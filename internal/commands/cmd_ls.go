package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/pkg/iojson"
)

// LsCmd implements the tick ls command.
type LsCmd struct {
	flags *Flags
	app   *tick.App

	jsonOutput bool
	filter     string
}

// NewLsCmd creates a new ls command.
func NewLsCmd(flags *Flags, app *tick.App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application.
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Aliases:   []string{"list"},
		Usage:     "List tasks",
		UsageText: "tick ls [--filter <all|active|completed>] [--json]",
		Description: `Displays a table of tasks with id, state, creation time, and text.

Unrecognized filter values behave like "all". Use --json for JSON-lines
output suitable for scripts.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "filter",
				Aliases:     []string{"f"},
				Usage:       "filter by status (all, active, completed)",
				Value:       string(task.FilterAll),
				Destination: &cmd.filter,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cmd.app.Tasks.SetFilter(task.ParseFilter(cmd.filter))
	tasks := cmd.app.Tasks.FilteredTasks()

	if len(tasks) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintln(os.Stderr, "No tasks found")
		}
		return nil
	}

	out := c.Root().Writer

	if cmd.jsonOutput {
		for _, t := range tasks {
			if err := iojson.WriteLine(out, t); err != nil {
				return fmt.Errorf("encode task: %w", err)
			}
		}
		return nil
	}

	// Leave room for the fixed columns when truncating text.
	textWidth := terminalWidth() - 30

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tDONE\tCREATED\tTEXT")

	for _, t := range tasks {
		done := " "
		if t.Completed {
			done = "x"
		}
		_, _ = fmt.Fprintf(w, "%d\t[%s]\t%s\t%s\n", t.ID, done, t.FormattedTimestamp(), truncate(t.Text, textWidth))
	}

	return w.Flush()
}

// terminalWidth returns the stdout width, or 80 when stdout is not a terminal.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if utf8.RuneCountInString(s) <= width {
		return s
	}

	runes := []rune(s)
	return string(runes[:width-1]) + "…"
}
