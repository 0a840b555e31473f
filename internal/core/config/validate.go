package config

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tick/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateTheme(),
		c.validateKeybindings(),
	)
}

func (c *Config) validateTheme() error {
	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		return criterio.NewFieldErrors("tui.theme", fmt.Errorf(
			"unknown theme %q (available: %s)",
			c.TUI.Theme, strings.Join(styles.ThemeNames(), ", "),
		))
	}
	return nil
}

func (c *Config) validateKeybindings() error {
	errs := make([]error, 0)
	for key, kb := range c.Keybindings {
		if _, ok := knownActions[kb.Action]; !ok {
			errs = append(errs, criterio.NewFieldErrors(
				"keybindings."+key,
				fmt.Errorf("unknown action %q", kb.Action),
			))
		}
	}
	return criterio.ValidateStruct(errs...)
}
