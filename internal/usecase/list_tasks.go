package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Query domain.TaskQuery // Filter, search and sort order
}

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Tasks    []*domain.Task  // Matching tasks in the requested order
	Overview domain.Overview // Counts over every task, ignoring the query
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskRepository
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository) *ListTasks {
	return &ListTasks{
		tasks: tasks,
	}
}

// Execute returns the projection for the query. The store is not modified.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	return &ListTasksOutput{
		Tasks:    uc.tasks.Query(in.Query),
		Overview: domain.NewOverview(uc.tasks.All()),
	}, nil
}
