// Package config handles configuration loading and validation for tick.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/tick/internal/core/styles"
)

// Built-in action names for keybindings.
const (
	ActionAdd             = "add"
	ActionToggle          = "toggle"
	ActionEdit            = "edit"
	ActionDelete          = "delete"
	ActionClearCompleted  = "clear-completed"
	ActionClearAll        = "clear-all"
	ActionFilterAll       = "filter-all"
	ActionFilterActive    = "filter-active"
	ActionFilterCompleted = "filter-completed"
	ActionHelp            = "help"
	ActionQuit            = "quit"
)

// knownActions is the set of actions a keybinding may reference.
var knownActions = map[string]struct{}{
	ActionAdd:             {},
	ActionToggle:          {},
	ActionEdit:            {},
	ActionDelete:          {},
	ActionClearCompleted:  {},
	ActionClearAll:        {},
	ActionFilterAll:       {},
	ActionFilterActive:    {},
	ActionFilterCompleted: {},
	ActionHelp:            {},
	ActionQuit:            {},
}

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"a": {Action: ActionAdd, Help: "add"},
	"x": {Action: ActionToggle, Help: "toggle"},
	"e": {Action: ActionEdit, Help: "edit"},
	"d": {
		Action:  ActionDelete,
		Help:    "delete",
		Confirm: "Delete this task?",
	},
	"C": {
		Action:  ActionClearCompleted,
		Help:    "clear done",
		Confirm: "Remove all completed tasks?",
	},
	"D": {
		Action:  ActionClearAll,
		Help:    "clear all",
		Confirm: "Remove ALL tasks? This cannot be undone.",
	},
	"1": {Action: ActionFilterAll, Help: "all"},
	"2": {Action: ActionFilterActive, Help: "active"},
	"3": {Action: ActionFilterCompleted, Help: "done"},
	"?": {Action: ActionHelp, Help: "help"},
	"q": {Action: ActionQuit, Help: "quit"},
}

// Keybinding maps a key press to a built-in action.
type Keybinding struct {
	Action  string `yaml:"action"`
	Help    string `yaml:"help"`
	Confirm string `yaml:"confirm"` // confirmation message shown before the action runs, empty = no confirm
}

// TUIConfig holds TUI-specific settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Config holds the application configuration.
type Config struct {
	TUI         TUIConfig             `yaml:"tui"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{Theme: styles.DefaultTheme},
	}
}

// Load reads the config file if it exists, merges user keybindings into the
// defaults, applies default values, and validates the result.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	if c.TUI.Theme == "" {
		c.TUI.Theme = styles.DefaultTheme
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	for k, v := range defaults {
		result[k] = v
	}

	for k, v := range user {
		result[k] = v
	}

	return result
}

// KeyFor returns the first key bound to the given action, for help text.
func (c *Config) KeyFor(action string) string {
	// Prefer the default key when it still maps to the action.
	for key, kb := range defaultKeybindings {
		if kb.Action == action {
			if bound, ok := c.Keybindings[key]; ok && bound.Action == action {
				return key
			}
		}
	}
	for key, kb := range c.Keybindings {
		if kb.Action == action {
			return key
		}
	}
	return ""
}
