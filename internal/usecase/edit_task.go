package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// EditTaskInput contains the parameters for editing a task.
type EditTaskInput struct {
	Fields domain.TaskFields // Fields to change (nil = unchanged)
	TaskID int               // Task ID to edit
}

// EditTaskOutput contains the result of editing a task.
type EditTaskOutput struct {
	Task *domain.Task // The edited task (nil if not found)
}

// EditTask is the use case for editing a task's title, description,
// priority and due date. Status, timestamps and counters are untouched.
type EditTask struct {
	tasks  domain.TaskRepository
	file   domain.TaskFile
	logger domain.Logger
}

// NewEditTask creates a new EditTask use case.
func NewEditTask(tasks domain.TaskRepository, file domain.TaskFile, logger domain.Logger) *EditTask {
	return &EditTask{
		tasks:  tasks,
		file:   file,
		logger: logger,
	}
}

// Execute applies the fields and saves the list.
// A missing task is not an error; the output carries a nil task.
func (uc *EditTask) Execute(_ context.Context, in EditTaskInput) (*EditTaskOutput, error) {
	if in.Fields.IsEmpty() {
		return nil, domain.ErrNoFieldsToUpdate
	}
	if err := in.Fields.Validate(); err != nil {
		return nil, err
	}

	task, ok := uc.tasks.Update(in.TaskID, in.Fields)
	if !ok {
		return &EditTaskOutput{}, nil
	}

	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "task", "updated")
	}

	return &EditTaskOutput{Task: task}, nil
}
