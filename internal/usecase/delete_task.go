package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	TaskID int // Task ID to delete
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Task *domain.Task // The deleted task (nil if not found)
}

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks   domain.TaskRepository
	file    domain.TaskFile
	tracker *Tracker
	logger  domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, file domain.TaskFile, tracker *Tracker, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		tasks:   tasks,
		file:    file,
		tracker: tracker,
		logger:  logger,
	}
}

// Execute stops the task's timer, removes the task and saves the list.
// A missing task is not an error; the output carries a nil task.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return &DeleteTaskOutput{}, nil
	}

	// The timer goes first so no tick can observe a half-removed task.
	if uc.tracker != nil {
		uc.tracker.Cancel(in.TaskID)
	}
	uc.tasks.Remove(in.TaskID)

	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", fmt.Sprintf("deleted: %q", task.Title))
	}

	return &DeleteTaskOutput{Task: task}, nil
}
