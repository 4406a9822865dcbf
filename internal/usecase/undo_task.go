package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// UndoTaskInput contains the parameters for reopening a task.
type UndoTaskInput struct {
	TaskID     int  // Task ID to reopen
	StartTimer bool // Resume tracking after reopening
}

// UndoTaskOutput contains the result of reopening a task.
type UndoTaskOutput struct {
	Task         *domain.Task // The reopened task (nil if not found)
	TimerStarted bool         // Whether a timer was started
}

// UndoTask is the use case for moving a done task back to pending.
type UndoTask struct {
	tasks   domain.TaskRepository
	file    domain.TaskFile
	tracker *Tracker
	logger  domain.Logger
}

// NewUndoTask creates a new UndoTask use case.
func NewUndoTask(tasks domain.TaskRepository, file domain.TaskFile, tracker *Tracker, logger domain.Logger) *UndoTask {
	return &UndoTask{
		tasks:   tasks,
		file:    file,
		tracker: tracker,
		logger:  logger,
	}
}

// Execute reopens the task and saves the list. A zero counter is restored
// to the duration baseline. Reopening a pending task fails with
// domain.ErrInvalidTransition.
func (uc *UndoTask) Execute(_ context.Context, in UndoTaskInput) (*UndoTaskOutput, error) {
	task, err := uc.tasks.Undo(in.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return &UndoTaskOutput{}, nil
	}

	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "reopened")
	}

	out := &UndoTaskOutput{Task: task}
	if in.StartTimer && uc.tracker != nil {
		err := uc.tracker.Start(task.ID)
		switch {
		case err == nil:
			out.TimerStarted = true
		case errors.Is(err, domain.ErrTimerActive):
		default:
			return nil, fmt.Errorf("start timer: %w", err)
		}
	}
	return out, nil
}
