// Package tick wires the task service into an application container shared
// by CLI commands and the TUI.
package tick

import (
	"github.com/colonyops/tick/internal/core/config"
)

// App aggregates the services and configuration used across commands.
type App struct {
	Tasks  *TaskService
	Config *config.Config
}

// NewApp creates a new application container.
func NewApp(tasks *TaskService, cfg *config.Config) *App {
	return &App{
		Tasks:  tasks,
		Config: cfg,
	}
}
