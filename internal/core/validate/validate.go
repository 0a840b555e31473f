// Package validate provides shared validation functions.
package validate

import (
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/tick/internal/core/task"
)

// TaskText validates task text after trimming whitespace. It returns
// task.ErrEmptyText or task.ErrTextTooLong so callers can branch on the
// failure kind.
func TaskText(text string) error {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return task.ErrEmptyText
	}
	if task.TooLong(trimmed) {
		return task.ErrTextTooLong
	}
	return nil
}

// TaskTextField returns a criterio validator result for task text.
func TaskTextField(field, text string) error {
	return criterio.Run(field, text, TaskText)
}
