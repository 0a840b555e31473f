// Package stores implements persistence for the task collection.
package stores

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"github.com/colonyops/tick/internal/core/task"
)

// SnapshotFile is the file name of the task snapshot inside the data directory.
const SnapshotFile = "tasks.json"

// TaskStore persists the full task collection as a JSON snapshot on disk.
// Every save overwrites the previous snapshot; there is no incremental state.
type TaskStore struct {
	path string
	log  zerolog.Logger
	mu   sync.Mutex
}

// NewTaskStore creates a snapshot store rooted in dataDir.
func NewTaskStore(dataDir string, logger zerolog.Logger) *TaskStore {
	return &TaskStore{
		path: filepath.Join(dataDir, SnapshotFile),
		log:  logger,
	}
}

// Path returns the snapshot file path.
func (s *TaskStore) Path() string {
	return s.path
}

// Load reads the snapshot from disk. A missing or empty file yields an empty
// collection. A malformed file is logged and also yields an empty collection,
// so a bad snapshot never takes the application down.
func (s *TaskStore) Load() []task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", s.path).Msg("read task snapshot")
		}
		return nil
	}

	if len(data) == 0 {
		return nil
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("malformed task snapshot, starting empty")
		return nil
	}

	return tasks
}

// Save writes the collection to disk atomically, replacing any prior snapshot.
func (s *TaskStore) Save(tasks []task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	if tasks == nil {
		tasks = []task.Task{}
	}

	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
