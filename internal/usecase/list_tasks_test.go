package usecase

import (
	"context"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTasks_Execute(t *testing.T) {
	// Setup: priorities {high, low, high}, statuses {pending, done, pending}
	t1 := pendingTask(1, "one")
	t1.Priority = domain.PriorityHigh
	t2 := doneTask(2, "two")
	t3 := pendingTask(3, "three")
	t3.Priority = domain.PriorityHigh
	env := newTestEnv(t1, t2, t3)
	uc := NewListTasks(env.store)

	// Execute
	out, err := uc.Execute(context.Background(), ListTasksInput{
		Query: domain.TaskQuery{Status: domain.StatusFilterPending, Priority: domain.PriorityFilterHigh},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 3, out.Tasks[0].ID)
	assert.Equal(t, 1, out.Tasks[1].ID)
	assert.Equal(t, domain.Overview{Total: 3, Pending: 2, Done: 1, HighPriority: 2}, out.Overview)
	assert.Equal(t, 0, env.file.Saves)
}

func TestListTasks_Execute_Search(t *testing.T) {
	t1 := pendingTask(1, "Buy milk")
	t2 := pendingTask(2, "Call bank")
	t2.Description = "ask about MILK money"
	env := newTestEnv(t1, t2, pendingTask(3, "other"))
	uc := NewListTasks(env.store)

	out, err := uc.Execute(context.Background(), ListTasksInput{
		Query: domain.TaskQuery{Search: "milk", Order: domain.SortOldest},
	})

	require.NoError(t, err)
	require.Len(t, out.Tasks, 2)
	assert.Equal(t, 1, out.Tasks[0].ID)
	assert.Equal(t, 2, out.Tasks[1].ID)
}
