package commands

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/internal/tui"
	"github.com/colonyops/tick/internal/tui/notify"
)

// TuiCmd launches the interactive task list. It is the default action when
// no subcommand is given.
type TuiCmd struct {
	flags *Flags
	app   *tick.App
}

// NewTuiCmd creates a new tui command.
func NewTuiCmd(flags *Flags, app *tick.App) *TuiCmd {
	return &TuiCmd{flags: flags, app: app}
}

// Run starts the Bubble Tea program.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	bus := notify.NewBus()
	model := tui.New(cmd.app, bus)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	return nil
}
