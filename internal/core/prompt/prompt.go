// Package prompt abstracts interactive confirmation away from command logic
// so destructive operations stay testable without a terminal.
package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"
)

// Confirmer asks the user a yes/no question before a destructive operation.
// A false answer must leave all state untouched.
type Confirmer interface {
	Confirm(title, description string) (bool, error)
}

// Huh prompts on the terminal using a huh confirm form.
type Huh struct{}

// Confirm shows the prompt and blocks until the user answers. Aborting the
// form (ctrl+c) counts as a no.
func (Huh) Confirm(title, description string) (bool, error) {
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Value(&ok).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, err
	}
	return ok, nil
}

// Always answers yes without prompting. Used for --yes flows and scripts.
type Always struct{}

func (Always) Confirm(string, string) (bool, error) { return true, nil }
