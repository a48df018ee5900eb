// Package jsonstore persists the task list to a single JSON file.
// Human-readable, portable, whole-file overwrite on every save.
// No locking; fine for a local single-user CLI.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/taskline/internal/task"
)

type Store struct {
	path string
	log  zerolog.Logger
}

func New(path string, log zerolog.Logger) *Store {
	return &Store{path: path, log: log}
}

// Load reads the full task list. A missing file is an empty list, not
// an error; a first save creates it.
func (s *Store) Load() ([]task.Task, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.Debug().Str("path", s.path).Msg("no task file yet, starting empty")
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var tasks []task.Task
	if err := json.Unmarshal(b, &tasks); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	s.log.Debug().Str("path", s.path).Int("count", len(tasks)).Msg("loaded tasks")
	return tasks, nil
}

// Save overwrites the file with the full current list.
func (s *Store) Save(tasks []task.Task) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	s.log.Debug().Str("path", s.path).Int("count", len(tasks)).Msg("saved tasks")
	return nil
}
