package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/colonyops/tick/internal/core/config"
)

// RenderHelp renders the keybinding help overlay as markdown.
func RenderHelp(keybindings map[string]config.Keybinding, width int) (string, error) {
	keys := make([]string, 0, len(keybindings))
	for key := range keybindings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var sb strings.Builder
	sb.WriteString("# tick\n\n")
	sb.WriteString("| Key | Action |\n|-----|--------|\n")
	for _, key := range keys {
		kb := keybindings[key]
		help := kb.Help
		if help == "" {
			help = kb.Action
		}
		fmt.Fprintf(&sb, "| `%s` | %s |\n", key, help)
	}
	sb.WriteString("| `j`/`k`, arrows | move |\n")
	sb.WriteString("| `esc` | close / cancel |\n")
	sb.WriteString("\nPress any key to close.\n")

	wrapWidth := max(width-6, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return "", err
	}

	return r.Render(sb.String())
}
