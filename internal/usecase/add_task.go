// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/runoshun/todo/internal/domain"
)

// AddTaskInput contains the parameters for creating a task.
// Fields are ordered to minimize memory padding.
type AddTaskInput struct {
	Title       string          // Task title (required)
	Description string          // Task description (optional)
	Priority    domain.Priority // Priority (optional, empty = default priority)
	DueDate     string          // Due date (optional)
	StartTimer  bool            // Start tracking elapsed time right away
}

// AddTaskOutput contains the result of creating a task.
type AddTaskOutput struct {
	Task *domain.Task // The created task
}

// AddTask is the use case for creating a task.
// Fields are ordered to minimize memory padding.
type AddTask struct {
	tasks           domain.TaskRepository
	file            domain.TaskFile
	tracker         *Tracker
	clock           domain.Clock
	logger          domain.Logger
	defaultPriority domain.Priority
}

// NewAddTask creates a new AddTask use case.
// tracker may be nil when timers are never started.
func NewAddTask(tasks domain.TaskRepository, file domain.TaskFile, tracker *Tracker, clock domain.Clock, logger domain.Logger, defaultPriority domain.Priority) *AddTask {
	if !defaultPriority.IsValid() {
		defaultPriority = domain.DefaultPriority
	}
	return &AddTask{
		tasks:           tasks,
		file:            file,
		tracker:         tracker,
		clock:           clock,
		logger:          logger,
		defaultPriority: defaultPriority,
	}
}

// Execute creates a pending task with zeroed counters and saves the list.
// A task that could not be saved is not kept.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = uc.defaultPriority
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task := &domain.Task{
		ID:          uc.tasks.NextID(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Status:      domain.StatusPending,
		Priority:    priority,
		DueDate:     strings.TrimSpace(in.DueDate),
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.tasks.Add(task); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	if err := persist(uc.file, uc.tasks); err != nil {
		uc.tasks.Remove(task.ID)
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("created: %q", task.Title))
	}

	if in.StartTimer && uc.tracker != nil {
		if err := uc.tracker.Start(task.ID); err != nil {
			return nil, fmt.Errorf("start timer: %w", err)
		}
	}

	return &AddTaskOutput{Task: task}, nil
}
