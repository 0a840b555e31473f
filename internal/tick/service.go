package tick

import (
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/core/validate"
)

// Snapshotter persists the full task collection.
type Snapshotter interface {
	// Load returns the persisted collection, or an empty one if nothing
	// usable is stored.
	Load() []task.Task
	// Save replaces the persisted collection.
	Save(tasks []task.Task) error
}

// TaskService owns the task collection and the current filter. Every
// mutation persists the full collection; persistence failures are logged and
// swallowed, so the in-memory state stays authoritative for the session.
//
// The service is not safe for concurrent use. Both the TUI event loop and
// CLI commands drive it from a single goroutine.
type TaskService struct {
	store  Snapshotter
	log    zerolog.Logger
	tasks  []task.Task
	filter task.Filter
	nextID int64
}

// NewTaskService loads the persisted collection and seeds the ID counter at
// max(existing)+1 so IDs stay unique across restarts.
func NewTaskService(store Snapshotter, logger zerolog.Logger) *TaskService {
	tasks := store.Load()

	var next int64 = 1
	for _, t := range tasks {
		if t.ID >= next {
			next = t.ID + 1
		}
	}

	return &TaskService{
		store:  store,
		log:    logger,
		tasks:  tasks,
		filter: task.FilterAll,
		nextID: next,
	}
}

// Add validates and appends a new incomplete task, then persists.
func (s *TaskService) Add(raw string) (task.Task, error) {
	text := strings.TrimSpace(raw)
	if err := validate.TaskText(text); err != nil {
		return task.Task{}, err
	}

	t := task.Task{
		ID:        s.nextID,
		Text:      text,
		CreatedAt: time.Now(),
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.persist()

	return t, nil
}

// Delete removes the task with the given ID. An absent ID is a silent no-op.
// Confirmation is the caller's responsibility; by the time Delete runs the
// user has already said yes.
func (s *TaskService) Delete(id int64) {
	idx := s.index(id)
	if idx < 0 {
		return
	}
	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	s.persist()
}

// Toggle flips the completed flag on the task with the given ID and returns
// the updated task. An absent ID is a silent no-op.
func (s *TaskService) Toggle(id int64) (task.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return task.Task{}, false
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	s.persist()
	return s.tasks[idx], true
}

// Edit validates and replaces the text on the task with the given ID. An
// absent ID is a silent no-op after validation passes.
func (s *TaskService) Edit(id int64, raw string) error {
	text := strings.TrimSpace(raw)
	if err := validate.TaskText(text); err != nil {
		return err
	}

	idx := s.index(id)
	if idx < 0 {
		return nil
	}
	s.tasks[idx].Text = text
	s.persist()
	return nil
}

// ClearCompleted removes every completed task and returns how many were
// removed. Confirmation is the caller's responsibility.
func (s *TaskService) ClearCompleted() int {
	before := len(s.tasks)
	s.tasks = slices.DeleteFunc(s.tasks, func(t task.Task) bool {
		return t.Completed
	})
	removed := before - len(s.tasks)
	if removed > 0 {
		s.persist()
	}
	return removed
}

// ClearAll empties the collection and returns how many tasks were removed.
// Confirmation is the caller's responsibility.
func (s *TaskService) ClearAll() int {
	removed := len(s.tasks)
	s.tasks = nil
	s.persist()
	return removed
}

// SetFilter sets the current filter. Unrecognized values fall back to
// FilterAll.
func (s *TaskService) SetFilter(f task.Filter) {
	if !f.IsValid() {
		f = task.FilterAll
	}
	s.filter = f
}

// Filter returns the current filter.
func (s *TaskService) Filter() task.Filter {
	return s.filter
}

// Get returns the task with the given ID.
func (s *TaskService) Get(id int64) (task.Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return task.Task{}, false
	}
	return s.tasks[idx], true
}

// Tasks returns a copy of the full collection in insertion order.
func (s *TaskService) Tasks() []task.Task {
	return slices.Clone(s.tasks)
}

// Filtered returns a lazy sequence of tasks matching the current filter in
// insertion order. The sequence is recomputed on every iteration, so it is
// restartable and always reflects the current collection.
func (s *TaskService) Filtered() iter.Seq[task.Task] {
	return func(yield func(task.Task) bool) {
		for _, t := range s.tasks {
			if !s.filter.Match(t) {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// FilteredTasks collects Filtered into a slice.
func (s *TaskService) FilteredTasks() []task.Task {
	return slices.Collect(s.Filtered())
}

// Stats returns counts derived from the current collection.
func (s *TaskService) Stats() task.Stats {
	return task.Count(s.tasks)
}

func (s *TaskService) index(id int64) int {
	return slices.IndexFunc(s.tasks, func(t task.Task) bool {
		return t.ID == id
	})
}

func (s *TaskService) persist() {
	if err := s.store.Save(s.tasks); err != nil {
		s.log.Error().Err(err).Msg("persist task snapshot")
	}
}
