package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// RenderList is a pure projection of (tasks, cursor) onto the displayed
// list. It never mutates state.
func RenderList(tasks []task.Task, cursor int, f task.Filter) string {
	if len(tasks) == 0 {
		return styles.EmptyStateStyle.Render(emptyMessage(f))
	}

	rows := make([]string, 0, len(tasks))
	for i, t := range tasks {
		rows = append(rows, renderRow(t, i == cursor))
	}
	return strings.Join(rows, "\n")
}

func renderRow(t task.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = styles.CursorStyle.Render("> ")
	}

	checkbox := "[ ]"
	textStyle := styles.TaskTextStyle
	if t.Completed {
		checkbox = "[x]"
		textStyle = styles.TaskDoneStyle
	}

	text := textStyle.Render(Sanitize(t.Text))
	stamp := styles.TimestampStyle.Render(t.FormattedTimestamp())

	return fmt.Sprintf("%s%s %s  %s", cursor, checkbox, text, stamp)
}

func emptyMessage(f task.Filter) string {
	switch f {
	case task.FilterActive:
		return "No active tasks."
	case task.FilterCompleted:
		return "No completed tasks."
	default:
		return "No tasks yet. Press 'a' to add one."
	}
}

// RenderStatusBar shows the filter tabs and summary counts.
func RenderStatusBar(f task.Filter, st task.Stats) string {
	tabs := make([]string, 0, 3)
	for _, candidate := range task.Filters() {
		style := styles.FilterInactiveStyle
		if candidate == f {
			style = styles.FilterActiveStyle
		}
		tabs = append(tabs, style.Render(string(candidate)))
	}

	counts := styles.StatsBarStyle.Render(fmt.Sprintf(
		"%d total / %d active / %d done", st.Total, st.Active, st.Completed,
	))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strings.Join(tabs, styles.StatsBarStyle.Render(" | ")),
		styles.StatsBarStyle.Render("   "),
		counts,
	)
}

// Sanitize neutralizes control and escape characters so stored text cannot
// inject terminal sequences into the rendered output.
func Sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
