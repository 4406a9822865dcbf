package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound          = errors.New("task not found")
	ErrDuplicateID           = errors.New("task id already in use")
	ErrInvalidTransition     = errors.New("invalid status transition")
	ErrEmptyTitle            = errors.New("title is required")
	ErrInvalidPriority       = errors.New("invalid priority (want low, medium or high)")
	ErrNoFieldsToUpdate      = errors.New("no fields to update")
	ErrTimerActive           = errors.New("timer already running")
	ErrTaskDone              = errors.New("task is already marked done")
	ErrInvalidStatusFilter   = errors.New("invalid status filter (want all, pending or done)")
	ErrInvalidPriorityFilter = errors.New("invalid priority filter (want all, low, medium or high)")
	ErrInvalidSortOrder      = errors.New("invalid sort order (want newest or oldest)")
	ErrConfigExists          = errors.New("config file already exists")
	ErrEmptyFile             = errors.New("file is empty")
	ErrNoTasksInFile         = errors.New("no tasks found in file")
)

// TypeCoercionError reports a persisted field that could not be converted
// to the type the task model requires.
type TypeCoercionError struct {
	Field string // JSON field name
	Value string // Raw JSON value
	Index int    // Position of the record in the file
}

func (e *TypeCoercionError) Error() string {
	return fmt.Sprintf("task record %d: cannot coerce %s value %s", e.Index, e.Field, e.Value)
}
