package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ShowTaskInput contains the parameters for showing a task.
type ShowTaskInput struct {
	TaskID int // Task ID to show
}

// ShowTaskOutput contains the result of showing a task.
type ShowTaskOutput struct {
	Task    *domain.Task // The task (nil if not found)
	Running bool         // Whether the task's timer is active
}

// ShowTask is the use case for showing a single task.
type ShowTask struct {
	tasks   domain.TaskRepository
	tracker *Tracker
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskRepository, tracker *Tracker) *ShowTask {
	return &ShowTask{
		tasks:   tasks,
		tracker: tracker,
	}
}

// Execute looks up the task.
func (uc *ShowTask) Execute(_ context.Context, in ShowTaskInput) (*ShowTaskOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return &ShowTaskOutput{}, nil
	}
	return &ShowTaskOutput{
		Task:    task,
		Running: uc.tracker != nil && uc.tracker.Running(task.ID),
	}, nil
}
