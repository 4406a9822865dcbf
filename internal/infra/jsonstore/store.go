// Package jsonstore provides the JSON file persistence for tasks.
package jsonstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure File implements domain.TaskFile.
var _ domain.TaskFile = (*File)(nil)

// File reads and writes the task list at a fixed path.
type File struct {
	logger domain.Logger
	now    func() time.Time
	path   string
}

// New creates a File for the given path.
// The file does not need to exist; Load creates it.
// logger may be nil.
func New(path string, logger domain.Logger) *File {
	return &File{
		path:   path,
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the tasks file path.
func (f *File) Path() string {
	return f.path
}

// Load reads every task from the file.
//
// A missing file is created holding an empty list. A file that is not a
// JSON list of task objects is copied to <path>.bak, left in place, and an
// empty list is returned. An integer field that cannot be coerced fails with
// *domain.TypeCoercionError. Records sharing an id keep their data: every
// later holder gets a fresh id, and each change is logged as a warning.
func (f *File) Load() ([]*domain.Task, error) {
	content, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := f.Save(nil); err != nil {
				return nil, fmt.Errorf("create tasks file: %w", err)
			}
			return []*domain.Task{}, nil
		}
		return nil, fmt.Errorf("read tasks file: %w", err)
	}

	tasks, warnings, err := decodeTasks(content, f.now())
	if err == nil {
		warnings = append(warnings, renumberDuplicates(tasks)...)
		for _, w := range warnings {
			f.warn(w)
		}
		return tasks, nil
	}

	var coerceErr *domain.TypeCoercionError
	if errors.As(err, &coerceErr) {
		return nil, fmt.Errorf("load %s: %w", f.path, err)
	}

	bak := domain.BackupPath(f.path)
	if werr := os.WriteFile(bak, content, 0o600); werr != nil {
		return nil, fmt.Errorf("back up corrupt tasks file: %w", werr)
	}
	f.warn(fmt.Sprintf("corrupt tasks file (%v), copied to %s", err, bak))
	return []*domain.Task{}, nil
}

// Save replaces the file with the given tasks.
// The content is written to a temporary sibling and renamed over the target,
// so the previous file survives a crash mid-write.
func (f *File) Save(tasks []*domain.Task) error {
	content, err := encodeTasks(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if err := atomic.WriteFile(f.path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}

func (f *File) warn(msg string) {
	if f.logger != nil {
		f.logger.Warn(0, "store", msg)
	}
}

// encodeTasks renders tasks as an indented JSON list.
func encodeTasks(tasks []*domain.Task) ([]byte, error) {
	records := make([]record, 0, len(tasks))
	for _, t := range tasks {
		records = append(records, toRecord(t))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Load reads tasks from path. See File.Load.
func Load(path string) ([]*domain.Task, error) {
	return New(path, nil).Load()
}

// Save writes tasks to path. See File.Save.
func Save(path string, tasks []*domain.Task) error {
	return New(path, nil).Save(tasks)
}

// NextID returns the id for a new task in tasks.
func NextID(tasks []*domain.Task) int {
	return domain.NextID(tasks)
}
