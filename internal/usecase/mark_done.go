package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// MarkDoneInput contains the parameters for completing a task.
type MarkDoneInput struct {
	TaskID int // Task ID to complete
}

// MarkDoneOutput contains the result of completing a task.
type MarkDoneOutput struct {
	Task         *domain.Task // The completed task (nil if not found)
	TimerStopped bool         // Whether a running timer was stopped
}

// MarkDone is the use case for completing a task.
type MarkDone struct {
	tasks   domain.TaskRepository
	file    domain.TaskFile
	tracker *Tracker
	logger  domain.Logger
}

// NewMarkDone creates a new MarkDone use case.
func NewMarkDone(tasks domain.TaskRepository, file domain.TaskFile, tracker *Tracker, logger domain.Logger) *MarkDone {
	return &MarkDone{
		tasks:   tasks,
		file:    file,
		tracker: tracker,
		logger:  logger,
	}
}

// Execute marks the task done, stops its timer and saves the list.
// The elapsed counter is reset to zero.
// Completing a done task fails with domain.ErrInvalidTransition.
func (uc *MarkDone) Execute(_ context.Context, in MarkDoneInput) (*MarkDoneOutput, error) {
	task, err := uc.tasks.MarkDone(in.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return &MarkDoneOutput{}, nil
	}

	stopped := false
	if uc.tracker != nil {
		stopped = uc.tracker.Cancel(in.TaskID)
	}

	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "marked done")
	}

	return &MarkDoneOutput{Task: task, TimerStopped: stopped}, nil
}
