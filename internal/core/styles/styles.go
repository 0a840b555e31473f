// Package styles provides shared lipgloss styles for CLI and TUI components.
package styles

import "github.com/charmbracelet/lipgloss"

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports.
var (
	TitleStyle           lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style

	// Task list styles.
	TaskTextStyle   lipgloss.Style
	TaskDoneStyle   lipgloss.Style
	CursorStyle     lipgloss.Style
	TimestampStyle  lipgloss.Style
	EmptyStateStyle lipgloss.Style

	// Status bar styles.
	StatsBarStyle       lipgloss.Style
	FilterActiveStyle   lipgloss.Style
	FilterInactiveStyle lipgloss.Style

	// Modal styles.
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ConfirmMessageStyle lipgloss.Style

	// Toast styles.
	ToastInfoStyle  lipgloss.Style
	ToastWarnStyle  lipgloss.Style
	ToastErrorStyle lipgloss.Style
)

func init() {
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}

// SetTheme applies a palette and rebuilds all exported styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	TitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)

	TaskTextStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TaskDoneStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	CursorStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	TimestampStyle = lipgloss.NewStyle().Foreground(p.Muted)
	EmptyStateStyle = lipgloss.NewStyle().Foreground(p.Muted).Italic(true).Padding(1, 2)

	StatsBarStyle = lipgloss.NewStyle().Foreground(p.Muted)
	FilterActiveStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true)
	FilterInactiveStyle = lipgloss.NewStyle().Foreground(p.Muted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ConfirmMessageStyle = lipgloss.NewStyle().Foreground(p.Warning)

	ToastInfoStyle = lipgloss.NewStyle().Foreground(p.Success)
	ToastWarnStyle = lipgloss.NewStyle().Foreground(p.Warning)
	ToastErrorStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
}
