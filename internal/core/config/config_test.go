package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/colonyops/tick/internal/core/styles"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", "/tmp/data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.TUI.Theme != styles.DefaultTheme {
		t.Errorf("theme = %q, want default", cfg.TUI.Theme)
	}
	if cfg.DataDir != "/tmp/data" {
		t.Errorf("data dir = %q, want /tmp/data", cfg.DataDir)
	}

	// Default keybindings are present.
	kb, ok := cfg.Keybindings["a"]
	if !ok || kb.Action != ActionAdd {
		t.Errorf("default 'a' binding = %+v, want add", kb)
	}
	if kb := cfg.Keybindings["d"]; kb.Confirm == "" {
		t.Error("delete binding must carry a confirmation message")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), "/tmp/data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.TUI.Theme != styles.DefaultTheme {
		t.Errorf("theme = %q, want default", cfg.TUI.Theme)
	}
}

func TestLoad_UserOverridesKeybinding(t *testing.T) {
	path := writeConfig(t, `
keybindings:
  "t":
    action: toggle
    help: tick off
  "d":
    action: delete
    help: delete
    confirm: Really?
`)

	cfg, err := Load(path, "/tmp/data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if kb := cfg.Keybindings["t"]; kb.Action != ActionToggle {
		t.Errorf("user binding 't' = %+v, want toggle", kb)
	}
	if kb := cfg.Keybindings["d"]; kb.Confirm != "Really?" {
		t.Errorf("user override lost: %+v", kb)
	}
	// Untouched defaults survive the merge.
	if kb := cfg.Keybindings["a"]; kb.Action != ActionAdd {
		t.Errorf("default binding 'a' = %+v, want add", kb)
	}
}

func TestLoad_UnknownActionRejected(t *testing.T) {
	path := writeConfig(t, `
keybindings:
  "z":
    action: explode
`)

	if _, err := Load(path, "/tmp/data"); err == nil {
		t.Error("expected an error for an unknown keybinding action")
	}
}

func TestLoad_UnknownThemeRejected(t *testing.T) {
	path := writeConfig(t, `
tui:
  theme: hotdog-stand
`)

	if _, err := Load(path, "/tmp/data"); err == nil {
		t.Error("expected an error for an unknown theme")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, `{not: [valid`)

	if _, err := Load(path, "/tmp/data"); err == nil {
		t.Error("expected a parse error")
	}
}

func TestKeyFor(t *testing.T) {
	cfg, err := Load("", "/tmp/data")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := cfg.KeyFor(ActionAdd); got != "a" {
		t.Errorf("KeyFor(add) = %q, want a", got)
	}
	if got := cfg.KeyFor("nonexistent"); got != "" {
		t.Errorf("KeyFor(nonexistent) = %q, want empty", got)
	}
}
