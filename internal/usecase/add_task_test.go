package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAddTask(env *testEnv) *AddTask {
	return NewAddTask(env.store, env.file, env.tracker, env.clock, env.logger, domain.PriorityMedium)
}

func TestAddTask_Execute_Success(t *testing.T) {
	// Setup
	env := newTestEnv(pendingTask(5, "existing"), pendingTask(2, "other"))
	uc := newAddTask(env)

	// Execute
	out, err := uc.Execute(context.Background(), AddTaskInput{
		Title:       "  Write report ",
		Description: "numbers",
		Priority:    domain.PriorityHigh,
		DueDate:     "2025-03-31",
	})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, out.Task)
	assert.Equal(t, &domain.Task{
		ID:          6,
		Title:       "Write report",
		Description: "numbers",
		Status:      domain.StatusPending,
		Priority:    domain.PriorityHigh,
		DueDate:     "2025-03-31",
		CreatedAt:   testNow,
	}, out.Task)
	assert.Same(t, out.Task, env.store.Get(6))
	assert.Equal(t, 1, env.file.Saves)
	assert.Len(t, env.file.Saved, 3)
	assert.False(t, env.tracker.Running(6))
}

func TestAddTask_Execute_DefaultPriority(t *testing.T) {
	env := newTestEnv()
	uc := NewAddTask(env.store, env.file, env.tracker, env.clock, nil, domain.PriorityLow)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Task.ID)
	assert.Equal(t, domain.PriorityLow, out.Task.Priority)
}

func TestAddTask_Execute_InvalidDefaultFallsBackToMedium(t *testing.T) {
	env := newTestEnv()
	uc := NewAddTask(env.store, env.file, env.tracker, env.clock, nil, "")

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityMedium, out.Task.Priority)
}

func TestAddTask_Execute_StartTimer(t *testing.T) {
	env := newTestEnv()
	uc := newAddTask(env)

	out, err := uc.Execute(context.Background(), AddTaskInput{Title: "x", StartTimer: true})
	require.NoError(t, err)

	assert.True(t, env.tracker.Running(out.Task.ID))
	env.ticks(2)
	assert.Equal(t, 2, out.Task.RemainingSeconds)
}

func TestAddTask_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      AddTaskInput
		wantErr error
	}{
		{"empty title", AddTaskInput{Title: ""}, domain.ErrEmptyTitle},
		{"blank title", AddTaskInput{Title: "   "}, domain.ErrEmptyTitle},
		{"bad priority", AddTaskInput{Title: "x", Priority: "urgent"}, domain.ErrInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			uc := newAddTask(env)

			_, err := uc.Execute(context.Background(), tt.in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 0, env.store.Len())
			assert.Equal(t, 0, env.file.Saves)
		})
	}
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	env := newTestEnv()
	env.file.SaveErr = assert.AnError
	uc := newAddTask(env)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "x"})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save tasks")
	assert.Empty(t, env.store.All(), "unsaved task is not kept")
	assert.Equal(t, 1, env.store.NextID())
}

func TestAddTask_Execute_Logs(t *testing.T) {
	env := newTestEnv()
	uc := newAddTask(env)

	_, err := uc.Execute(context.Background(), AddTaskInput{Title: "x"})
	require.NoError(t, err)

	require.NotEmpty(t, env.logger.Entries)
	assert.Equal(t, "INFO", env.logger.Entries[0].Level)
	assert.Equal(t, 1, env.logger.Entries[0].TaskID)
	assert.Equal(t, `created: "x"`, env.logger.Entries[0].Msg)
}
