// Package tui implements the interactive task list interface.
package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/config"
	corenotify "github.com/colonyops/tick/internal/core/notify"
	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/tick"
	"github.com/colonyops/tick/internal/tui/components"
	"github.com/colonyops/tick/internal/tui/notify"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirm
	modeHelp
)

// editState tracks the single task being edited. At most one task can be in
// edit at a time; nil means no edit in progress.
type editState struct {
	id int64
}

// pendingConfirm holds a destructive action waiting for a yes/no answer.
type pendingConfirm struct {
	action string
	id     int64
	modal  components.ConfirmModal
}

// Model is the Bubble Tea model driving the task list. All state mutations
// go through the task service; the view functions only read.
type Model struct {
	app *tick.App
	bus *notify.Bus

	mode     mode
	cursor   int
	input    textinput.Model
	editing  *editState
	confirm  *pendingConfirm
	toast    *corenotify.Notification
	helpView string

	width  int
	height int
}

// New creates the TUI model.
func New(app *tick.App, bus *notify.Bus) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Width = 40
	// No CharLimit: over-long input is rejected by validation so the user
	// sees the error instead of silently truncated text.

	return Model{
		app:   app,
		bus:   bus,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-12, 20)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		m.toast = nil
		next, cmd := m.handleKey(msg)
		next.syncToast()
		return next, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.mode {
	case modeConfirm:
		return m.updateConfirm(msg)
	case modeAdd, modeEdit:
		return m.updateInput(msg)
	case modeHelp:
		m.mode = modeList
		return m, nil
	default:
		return m.updateList(msg)
	}
}

func (m Model) updateList(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		m.cursor = clampCursor(m.cursor+1, len(m.app.Tasks.FilteredTasks()))
		return m, nil
	}

	kb, ok := m.app.Config.Keybindings[msg.String()]
	if !ok {
		return m, nil
	}
	return m.runAction(kb)
}

func (m Model) runAction(kb config.Keybinding) (Model, tea.Cmd) {
	switch kb.Action {
	case config.ActionQuit:
		return m, tea.Quit

	case config.ActionHelp:
		help, err := components.RenderHelp(m.app.Config.Keybindings, m.width)
		if err != nil {
			m.bus.Errorf("render help: %s", err)
			return m, nil
		}
		m.helpView = help
		m.mode = modeHelp
		return m, nil

	case config.ActionAdd:
		m.input.SetValue("")
		m.mode = modeAdd
		return m, m.input.Focus()

	case config.ActionToggle:
		if t, ok := m.selectedTask(); ok {
			m.app.Tasks.Toggle(t.ID)
			m.cursor = clampCursor(m.cursor, len(m.app.Tasks.FilteredTasks()))
		}
		return m, nil

	case config.ActionEdit:
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		m.editing = &editState{id: t.ID}
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.mode = modeEdit
		return m, m.input.Focus()

	case config.ActionDelete:
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		message := kb.Confirm
		if message == "" {
			message = "Delete this task?"
		}
		m.confirm = &pendingConfirm{
			action: kb.Action,
			id:     t.ID,
			modal:  components.NewConfirmModal(message + "\n" + Sanitize(t.Text)),
		}
		m.mode = modeConfirm
		return m, nil

	case config.ActionClearCompleted:
		if m.app.Tasks.Stats().Completed == 0 {
			m.bus.Infof("No completed tasks to clear")
			return m, nil
		}
		return m.openConfirm(kb, "Remove all completed tasks?"), nil

	case config.ActionClearAll:
		if m.app.Tasks.Stats().Total == 0 {
			m.bus.Infof("Nothing to clear")
			return m, nil
		}
		return m.openConfirm(kb, "Remove ALL tasks?"), nil

	case config.ActionFilterAll:
		return m.setFilter(task.FilterAll), nil
	case config.ActionFilterActive:
		return m.setFilter(task.FilterActive), nil
	case config.ActionFilterCompleted:
		return m.setFilter(task.FilterCompleted), nil
	}

	return m, nil
}

func (m Model) openConfirm(kb config.Keybinding, fallback string) Model {
	message := kb.Confirm
	if message == "" {
		message = fallback
	}
	m.confirm = &pendingConfirm{
		action: kb.Action,
		modal:  components.NewConfirmModal(message),
	}
	m.mode = modeConfirm
	return m
}

func (m Model) setFilter(f task.Filter) Model {
	m.app.Tasks.SetFilter(f)
	m.cursor = clampCursor(m.cursor, len(m.app.Tasks.FilteredTasks()))
	return m
}

func (m Model) updateConfirm(msg tea.KeyMsg) (Model, tea.Cmd) {
	modal, cmd := m.confirm.modal.Update(msg)
	m.confirm.modal = modal

	switch {
	case modal.Confirmed():
		m.applyConfirmed()
		m.confirm = nil
		m.mode = modeList
	case modal.Cancelled():
		m.confirm = nil
		m.mode = modeList
	}

	return m, cmd
}

// applyConfirmed runs the destructive action after the user said yes.
func (m *Model) applyConfirmed() {
	switch m.confirm.action {
	case config.ActionDelete:
		m.app.Tasks.Delete(m.confirm.id)
		m.bus.Infof("Task deleted")
	case config.ActionClearCompleted:
		n := m.app.Tasks.ClearCompleted()
		m.bus.Infof("Removed %d completed task(s)", n)
	case config.ActionClearAll:
		n := m.app.Tasks.ClearAll()
		m.bus.Infof("Removed %d task(s)", n)
	}
	m.cursor = clampCursor(m.cursor, len(m.app.Tasks.FilteredTasks()))
}

func (m Model) updateInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel without mutating.
		m.editing = nil
		m.input.Blur()
		m.input.SetValue("")
		m.mode = modeList
		return m, nil

	case "enter":
		if m.mode == modeEdit {
			return m.saveEdit()
		}
		return m.saveAdd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) saveAdd() (Model, tea.Cmd) {
	t, err := m.app.Tasks.Add(m.input.Value())
	if err != nil {
		// Stay in add mode so the user can fix the text.
		m.bus.Errorf("%s", validationMessage(err))
		return m, nil
	}

	m.input.SetValue("")
	m.input.Blur()
	m.mode = modeList
	m.cursor = cursorFor(t.ID, m.app.Tasks.FilteredTasks(), m.cursor)
	return m, nil
}

func (m Model) saveEdit() (Model, tea.Cmd) {
	if err := m.app.Tasks.Edit(m.editing.id, m.input.Value()); err != nil {
		// Validation failed: surface the error and remain editing.
		m.bus.Errorf("%s", validationMessage(err))
		return m, nil
	}

	m.editing = nil
	m.input.Blur()
	m.input.SetValue("")
	m.mode = modeList
	return m, nil
}

func (m Model) selectedTask() (task.Task, bool) {
	tasks := m.app.Tasks.FilteredTasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.cursor], true
}

func (m *Model) syncToast() {
	if drained := m.bus.Drain(); len(drained) > 0 {
		last := drained[len(drained)-1]
		m.toast = &last
	}
}

func (m Model) View() string {
	switch m.mode {
	case modeHelp:
		return m.helpView
	case modeConfirm:
		return m.centered(m.confirm.modal.View())
	case modeAdd, modeEdit:
		return m.centered(m.inputModalView())
	}

	tasks := m.app.Tasks.FilteredTasks()
	list := RenderList(tasks, m.cursor, m.app.Tasks.Filter())
	status := RenderStatusBar(m.app.Tasks.Filter(), m.app.Tasks.Stats())

	sections := []string{
		styles.TitleStyle.Render("tick"),
		"",
		list,
		"",
		status,
	}

	if m.toast != nil {
		sections = append(sections, renderToast(*m.toast))
	}
	sections = append(sections, styles.TextMutedStyle.Render(m.helpHint()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) inputModalView() string {
	title := "Add task"
	if m.mode == modeEdit {
		title = "Edit task"
	}

	parts := []string{
		styles.ModalTitleStyle.Render(title),
		m.input.View(),
	}
	if m.toast != nil {
		parts = append(parts, renderToast(*m.toast))
	}
	parts = append(parts, styles.ModalHelpStyle.Render("enter save / esc cancel"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) centered(content string) string {
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) helpHint() string {
	cfg := m.app.Config
	return fmt.Sprintf("%s add / %s toggle / %s edit / %s delete / %s help / %s quit",
		cfg.KeyFor(config.ActionAdd),
		cfg.KeyFor(config.ActionToggle),
		cfg.KeyFor(config.ActionEdit),
		cfg.KeyFor(config.ActionDelete),
		cfg.KeyFor(config.ActionHelp),
		cfg.KeyFor(config.ActionQuit),
	)
}

func renderToast(n corenotify.Notification) string {
	switch n.Level {
	case corenotify.LevelError:
		return styles.ToastErrorStyle.Render(n.Message)
	case corenotify.LevelWarning:
		return styles.ToastWarnStyle.Render(n.Message)
	default:
		return styles.ToastInfoStyle.Render(n.Message)
	}
}

// validationMessage maps validation errors onto user-facing feedback.
func validationMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyText):
		return "Task text cannot be empty"
	case errors.Is(err, task.ErrTextTooLong):
		return fmt.Sprintf("Task text must be %d characters or fewer", task.MaxTextLen)
	default:
		return err.Error()
	}
}

// cursorFor points the cursor at the task with the given ID, or keeps the
// current position clamped when the task is filtered out of view.
func cursorFor(id int64, tasks []task.Task, current int) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return clampCursor(current, len(tasks))
}

func clampCursor(cursor, size int) int {
	if size == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	return cursor
}
