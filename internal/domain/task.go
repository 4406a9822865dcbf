// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"time"
)

// TickInterval is the period of one elapsed-time tick.
const TickInterval = time.Second

// Task represents one to-do item.
// Fields are ordered to minimize memory padding.
type Task struct {
	CreatedAt        time.Time // Creation time (immutable)
	Title            string    // Title (required)
	Description      string    // Description (optional)
	Status           Status    // pending or done
	Priority         Priority  // low, medium or high
	DueDate          string    // Due date, "YYYY-MM-DD" by convention (empty = none)
	ID               int       // Task ID, assigned by the store
	DurationSeconds  int       // Baseline the counter is restored to on undo/reset
	RemainingSeconds int       // Live elapsed-time counter
}

// TaskFields holds the editable fields of a task.
// Nil fields are left unchanged.
type TaskFields struct {
	Title       *string
	Description *string
	Priority    *Priority
	DueDate     *string // "" clears the due date
}

// IsEmpty returns true if no field is set.
func (f TaskFields) IsEmpty() bool {
	return f.Title == nil && f.Description == nil && f.Priority == nil && f.DueDate == nil
}

// Validate checks the fields that are set.
func (f TaskFields) Validate() error {
	if f.Title != nil && strings.TrimSpace(*f.Title) == "" {
		return ErrEmptyTitle
	}
	if f.Priority != nil && !f.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// Apply copies the set fields onto the task.
// Status, timestamps and counters are never touched.
func (f TaskFields) Apply(t *Task) {
	if f.Title != nil {
		t.Title = strings.TrimSpace(*f.Title)
	}
	if f.Description != nil {
		t.Description = strings.TrimSpace(*f.Description)
	}
	if f.Priority != nil {
		t.Priority = *f.Priority
	}
	if f.DueDate != nil {
		t.DueDate = strings.TrimSpace(*f.DueDate)
	}
}

// IsDone returns true if the task has been completed.
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// HasDueDate returns true if a due date is set.
func (t *Task) HasDueDate() bool {
	return t.DueDate != ""
}

// MarkDone transitions the task to done.
// The elapsed counter is reset to zero, matching the long-standing behavior.
func (t *Task) MarkDone() error {
	if !t.Status.CanTransitionTo(StatusDone) {
		return ErrInvalidTransition
	}
	t.Status = StatusDone
	t.RemainingSeconds = 0
	return nil
}

// Undo transitions a done task back to pending.
// A zero counter is restored to the duration baseline; a nonzero one is kept.
func (t *Task) Undo() error {
	if !t.Status.CanTransitionTo(StatusPending) {
		return ErrInvalidTransition
	}
	t.Status = StatusPending
	if t.RemainingSeconds == 0 {
		t.RemainingSeconds = t.DurationSeconds
	}
	return nil
}

// Tick adds one second to the elapsed counter.
// Returns false without changing anything if the task is done.
func (t *Task) Tick() bool {
	if t.IsDone() {
		return false
	}
	t.RemainingSeconds++
	return true
}

// ResetTimer restores the elapsed counter to the duration baseline.
func (t *Task) ResetTimer() {
	t.RemainingSeconds = max(t.DurationSeconds, 0)
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	c := *t
	return &c
}

// Elapsed returns the elapsed counter formatted for display.
func (t *Task) Elapsed() string {
	return FormatDuration(t.RemainingSeconds)
}

// NextID returns the id to assign to a new task: 1 for an empty list,
// otherwise one more than the largest id present.
func NextID(tasks []*Task) int {
	maxID := 0
	for _, t := range tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	return maxID + 1
}
