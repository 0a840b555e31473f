package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/data/stores"
	"github.com/colonyops/tick/internal/tick"
)

func newTestApp(t *testing.T) *tick.App {
	t.Helper()

	store := stores.NewTaskStore(t.TempDir(), zerolog.Nop())
	svc := tick.NewTaskService(store, zerolog.Nop())

	cfg, err := config.Load("", t.TempDir())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	return tick.NewApp(svc, cfg)
}

// stubConfirmer answers confirmation prompts without a terminal.
type stubConfirmer struct {
	answer bool
}

func (s stubConfirmer) Confirm(string, string) (bool, error) {
	return s.answer, nil
}

func TestAddCmd(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	flags := &Flags{}

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewAddCmd(flags, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "add", "Buy", "milk"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "Added task #1: Buy milk") {
		t.Errorf("output = %q", buf.String())
	}
	if got := app.Tasks.Stats(); got.Total != 1 {
		t.Errorf("stats = %+v, want one task", got)
	}
}

func TestAddCmd_ValidationError(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewAddCmd(&Flags{}, app).Register(root)

	err := root.Run(context.Background(), []string{"tick", "add", "   "})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if app.Tasks.Stats().Total != 0 {
		t.Error("rejected add must not mutate the collection")
	}
}

func TestLsCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	app.Tasks.Add("Buy milk")
	app.Tasks.Add("Walk dog")

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewLsCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "ls", "--json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d JSON lines, want 2", len(lines))
	}

	var first task.Task
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("decode first line: %v", err)
	}
	if first.Text != "Buy milk" {
		t.Errorf("first task = %+v", first)
	}
}

func TestLsCmd_FilterActive(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	a, _ := app.Tasks.Add("A")
	app.Tasks.Add("B")
	app.Tasks.Toggle(a.ID)

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewLsCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "ls", "--filter", "active"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "A") && !strings.Contains(out, "B") {
		t.Errorf("active filter output wrong: %q", out)
	}
	if !strings.Contains(out, "B") {
		t.Errorf("active task missing from output: %q", out)
	}
}

func TestToggleCmd(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	added, _ := app.Tasks.Add("A")

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewToggleCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "toggle", "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := app.Tasks.Get(added.ID)
	if !got.Completed {
		t.Error("toggle did not complete the task")
	}
	if !strings.Contains(buf.String(), "done") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestToggleCmd_AbsentIDIsNoop(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	app.Tasks.Add("A")

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewToggleCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "toggle", "99"}); err != nil {
		t.Fatalf("absent id must not be an error: %v", err)
	}
	if got, _ := app.Tasks.Get(1); got.Completed {
		t.Error("absent id toggled the wrong task")
	}
}

func TestEditCmd(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	added, _ := app.Tasks.Add("Old")

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewEditCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "edit", "1", "New", "text"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := app.Tasks.Get(added.ID)
	if got.Text != "New text" {
		t.Errorf("text = %q, want New text", got.Text)
	}
}

func TestRmCmd_Confirmed(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	app.Tasks.Add("Remove me")

	cmd := NewRmCmd(&Flags{}, app)
	cmd.confirmer = stubConfirmer{answer: true}

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = cmd.Register(root)

	if err := root.Run(context.Background(), []string{"tick", "rm", "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Tasks.Stats().Total != 0 {
		t.Error("confirmed rm must delete the task")
	}
}

func TestRmCmd_Declined(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	app.Tasks.Add("Keep me")

	cmd := NewRmCmd(&Flags{}, app)
	cmd.confirmer = stubConfirmer{answer: false}

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = cmd.Register(root)

	if err := root.Run(context.Background(), []string{"tick", "rm", "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Tasks.Stats().Total != 1 {
		t.Error("declined rm must leave the collection unchanged")
	}
	if !strings.Contains(buf.String(), "Aborted") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestClearCmd_CompletedOnly(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	a, _ := app.Tasks.Add("A")
	app.Tasks.Add("B")
	app.Tasks.Toggle(a.ID)

	cmd := NewClearCmd(&Flags{}, app)
	cmd.confirmer = stubConfirmer{answer: true}

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = cmd.Register(root)

	if err := root.Run(context.Background(), []string{"tick", "clear"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tasks := app.Tasks.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "B" {
		t.Errorf("remaining = %v, want only B", tasks)
	}
}

func TestClearCmd_AllWithYesFlag(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	app.Tasks.Add("X")

	// --yes bypasses the prompt entirely, no confirmer needed.
	cmd := NewClearCmd(&Flags{}, app)
	cmd.confirmer = stubConfirmer{answer: false}

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = cmd.Register(root)

	if err := root.Run(context.Background(), []string{"tick", "clear", "--all", "--yes"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if app.Tasks.Stats().Total != 0 {
		t.Error("clear --all --yes must empty the collection")
	}
}

func TestStatsCmd_JSON(t *testing.T) {
	var buf bytes.Buffer
	app := newTestApp(t)
	a, _ := app.Tasks.Add("A")
	app.Tasks.Add("B")
	app.Tasks.Toggle(a.ID)

	root := &cli.Command{Name: "tick", Writer: &buf}
	root = NewStatsCmd(&Flags{}, app).Register(root)

	if err := root.Run(context.Background(), []string{"tick", "stats", "--json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var st task.Stats
	if err := json.Unmarshal(buf.Bytes(), &st); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if st.Total != 2 || st.Active != 1 || st.Completed != 1 {
		t.Errorf("stats = %+v, want {2 1 1}", st)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short passes through", "abc", 10, "abc"},
		{"exact fits", "abcdefghij", 10, "abcdefghij"},
		{"long is cut with ellipsis", "abcdefghijk", 10, "abcdefghi…"},
		{"tiny width clamps to 10", "abcdefghijklmnop", 3, "abcdefghi…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
