package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
)

// mockRunLoop replaces runLoopFunc with fn for the duration of the test.
func mockRunLoop(t *testing.T, fn func(ctx context.Context, c *app.Container) error) {
	t.Helper()
	original := runLoopFunc
	runLoopFunc = fn
	t.Cleanup(func() {
		runLoopFunc = original
	})
}

func TestNewTrackCommand_TracksUntilCancelled(t *testing.T) {
	// Setup
	task := testTask(1, "Write report")
	task.RemainingSeconds = 10
	env := newTestEnv(task, testTask(2, "Other"))
	mockRunLoop(t, func(_ context.Context, _ *app.Container) error {
		env.sched.Advance(5 * domain.TickInterval)
		return context.Canceled
	})

	cmd := newTrackCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "Tracking task #1: Write report (0:10)")
	assert.Contains(t, output, "0:15")
	assert.Equal(t, 15, env.store.Get(1).RemainingSeconds)
	assert.Equal(t, 0, env.store.Get(2).RemainingSeconds)
	assert.Empty(t, env.container.Tracker.Active())
	assert.Equal(t, 0, env.sched.Pending())
	assert.Equal(t, 1, env.file.Saves)
	assert.Equal(t, 15, env.file.SavedTask(1).RemainingSeconds)
}

func TestNewTrackCommand_All(t *testing.T) {
	// Setup
	done := testTask(2, "Done")
	done.Status = domain.StatusDone
	env := newTestEnv(testTask(1, "One"), done, testTask(3, "Three"))
	var tracked []int
	mockRunLoop(t, func(_ context.Context, c *app.Container) error {
		tracked = c.Tracker.Active()
		env.sched.Advance(2 * domain.TickInterval)
		return context.DeadlineExceeded
	})

	cmd := newTrackCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--all", "--for", "2s"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, tracked)
	assert.Equal(t, 2, env.store.Get(1).RemainingSeconds)
	assert.Equal(t, 0, env.store.Get(2).RemainingSeconds)
	assert.Equal(t, 2, env.store.Get(3).RemainingSeconds)

	summary := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Contains(t, summary[len(summary)-2], "#1")
	assert.Contains(t, summary[len(summary)-1], "#3")
}

func TestNewTrackCommand_ForSetsDeadline(t *testing.T) {
	// Setup
	env := newTestEnv(testTask(1, "One"))
	var deadline time.Time
	var hasDeadline bool
	mockRunLoop(t, func(ctx context.Context, _ *app.Container) error {
		deadline, hasDeadline = ctx.Deadline()
		return context.DeadlineExceeded
	})

	cmd := newTrackCommand(env.container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"1", "--for", "25m"})

	// Execute
	before := time.Now()
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	require.True(t, hasDeadline)
	assert.WithinDuration(t, before.Add(25*time.Minute), deadline, time.Minute)
}

func TestNewTrackCommand_Errors(t *testing.T) {
	done := testTask(2, "Done")
	done.Status = domain.StatusDone

	tests := []struct {
		name    string
		tasks   []*domain.Task
		args    []string
		wantErr string
	}{
		{"no target", nil, []string{}, "task ID is required"},
		{"ids with all", nil, []string{"1", "--all"}, "cannot use task IDs with --all"},
		{"nothing pending", []*domain.Task{done}, []string{"--all"}, "no pending tasks to track"},
		{"not found", nil, []string{"4"}, "task #4 not found"},
		{"done task", []*domain.Task{done}, []string{"2"}, "task #2 is done"},
		{"invalid id", nil, []string{"x"}, "invalid task ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			env := newTestEnv(cloneTasks(tt.tasks)...)
			loopCalled := false
			mockRunLoop(t, func(context.Context, *app.Container) error {
				loopCalled = true
				return nil
			})

			cmd := newTrackCommand(env.container)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			// Execute
			err := cmd.Execute()

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.False(t, loopCalled)
		})
	}
}

func TestNewTrackCommand_DuplicateIDsTrackOnce(t *testing.T) {
	// Setup
	env := newTestEnv(testTask(1, "Write report"))
	var tracked []int
	mockRunLoop(t, func(_ context.Context, c *app.Container) error {
		tracked = c.Tracker.Active()
		env.sched.Advance(domain.TickInterval)
		return context.Canceled
	})

	cmd := newTrackCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1", "1"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []int{1}, tracked)
	assert.Equal(t, 1, strings.Count(buf.String(), "Tracking task #1"))
	assert.Equal(t, 1, env.store.Get(1).RemainingSeconds)
}

func TestNewTrackCommand_FailureStartsNoTimer(t *testing.T) {
	done := testTask(2, "Done")
	done.Status = domain.StatusDone

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"later id done", []string{"1", "2"}, "task #2 is done"},
		{"later id missing", []string{"1", "9"}, "task #9 not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			env := newTestEnv(testTask(1, "Pending"), cloneTasks([]*domain.Task{done})[0])
			mockRunLoop(t, func(context.Context, *app.Container) error {
				return nil
			})

			cmd := newTrackCommand(env.container)
			var buf bytes.Buffer
			cmd.SetOut(&buf)
			cmd.SetArgs(tt.args)

			// Execute
			err := cmd.Execute()

			// Assert
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Empty(t, env.container.Tracker.Active())
			assert.Equal(t, 0, env.sched.Pending())
			assert.NotContains(t, buf.String(), "Tracking task #1")
		})
	}
}

func TestNewResetCommand(t *testing.T) {
	// Setup
	task := testTask(1, "Task")
	task.DurationSeconds = 90
	task.RemainingSeconds = 400
	env := newTestEnv(task)
	require.NoError(t, env.container.Tracker.Start(1))

	cmd := newResetCommand(env.container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	// Execute
	err := cmd.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Reset task #1 to 1:30\n", buf.String())
	assert.Equal(t, 90, env.store.Get(1).RemainingSeconds)
	assert.False(t, env.container.Tracker.Running(1))
	assert.Equal(t, 1, env.file.Saves)
}

func TestNewResetCommand_NotFound(t *testing.T) {
	env := newTestEnv()
	cmd := newResetCommand(env.container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"2"})

	err := cmd.Execute()

	assert.EqualError(t, err, "task #2 not found")
	assert.Equal(t, 0, env.file.Saves)
}

func cloneTasks(tasks []*domain.Task) []*domain.Task {
	out := make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out
}
