package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/todo/internal/domain"
)

// ImportTasksInput contains the parameters for importing tasks.
type ImportTasksInput struct {
	Content string // File content (frontmatter blocks)
	DryRun  bool   // If true, parse and validate without creating tasks
}

// ImportTasksOutput contains the result of importing tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task // Created tasks (or tasks that would be created in dry-run mode)
}

// ImportTasks is the use case for creating several tasks from a file.
// Either every draft is valid and all tasks are created with one save,
// or nothing is created.
type ImportTasks struct {
	tasks           domain.TaskRepository
	file            domain.TaskFile
	clock           domain.Clock
	logger          domain.Logger
	defaultPriority domain.Priority
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(tasks domain.TaskRepository, file domain.TaskFile, clock domain.Clock, logger domain.Logger, defaultPriority domain.Priority) *ImportTasks {
	if !defaultPriority.IsValid() {
		defaultPriority = domain.DefaultPriority
	}
	return &ImportTasks{
		tasks:           tasks,
		file:            file,
		clock:           clock,
		logger:          logger,
		defaultPriority: defaultPriority,
	}
}

// Execute parses the content and creates the tasks.
func (uc *ImportTasks) Execute(_ context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	nextID := uc.tasks.NextID()
	created := make([]*domain.Task, 0, len(drafts))
	for i, draft := range drafts {
		priority := draft.Priority
		if priority == "" {
			priority = uc.defaultPriority
		}
		created = append(created, &domain.Task{
			ID:          nextID + i,
			Title:       draft.Title,
			Description: draft.Description,
			Status:      domain.StatusPending,
			Priority:    priority,
			DueDate:     draft.DueDate,
			CreatedAt:   now,
		})
	}

	if in.DryRun {
		return &ImportTasksOutput{Tasks: created}, nil
	}

	for _, task := range created {
		if err := uc.tasks.Add(task); err != nil {
			return nil, fmt.Errorf("add task: %w", err)
		}
	}
	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(0, "task", fmt.Sprintf("imported %d tasks", len(created)))
	}

	return &ImportTasksOutput{Tasks: created}, nil
}
