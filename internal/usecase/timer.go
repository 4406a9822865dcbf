package usecase

import (
	"context"

	"github.com/runoshun/todo/internal/domain"
)

// StartTimerInput contains the parameters for starting a timer.
type StartTimerInput struct {
	TaskID int // Task ID to track
}

// StartTimerOutput contains the result of starting a timer.
type StartTimerOutput struct {
	Task *domain.Task // The tracked task (nil if not found)
}

// StartTimer is the use case for starting a task's timer.
type StartTimer struct {
	tasks   domain.TaskRepository
	tracker *Tracker
}

// NewStartTimer creates a new StartTimer use case.
func NewStartTimer(tasks domain.TaskRepository, tracker *Tracker) *StartTimer {
	return &StartTimer{
		tasks:   tasks,
		tracker: tracker,
	}
}

// Execute starts the timer.
// Fails with domain.ErrTimerActive or domain.ErrTaskDone.
func (uc *StartTimer) Execute(_ context.Context, in StartTimerInput) (*StartTimerOutput, error) {
	if err := uc.tracker.Start(in.TaskID); err != nil {
		if isNotFound(err) {
			return &StartTimerOutput{}, nil
		}
		return nil, err
	}
	return &StartTimerOutput{Task: uc.tasks.Get(in.TaskID)}, nil
}

// StopTimerInput contains the parameters for stopping a timer.
type StopTimerInput struct {
	TaskID int // Task ID to stop tracking
}

// StopTimerOutput contains the result of stopping a timer.
type StopTimerOutput struct {
	Task    *domain.Task // The task (nil if not found)
	Stopped bool         // False if no timer was running
}

// StopTimer is the use case for stopping a task's timer.
type StopTimer struct {
	tasks   domain.TaskRepository
	tracker *Tracker
}

// NewStopTimer creates a new StopTimer use case.
func NewStopTimer(tasks domain.TaskRepository, tracker *Tracker) *StopTimer {
	return &StopTimer{
		tasks:   tasks,
		tracker: tracker,
	}
}

// Execute stops the timer and saves the list.
// Stopping a task without a running timer does nothing.
func (uc *StopTimer) Execute(_ context.Context, in StopTimerInput) (*StopTimerOutput, error) {
	stopped, err := uc.tracker.Stop(in.TaskID)
	if err != nil {
		return nil, err
	}
	return &StopTimerOutput{Task: uc.tasks.Get(in.TaskID), Stopped: stopped}, nil
}

// ResetTimerInput contains the parameters for resetting a timer.
type ResetTimerInput struct {
	TaskID int // Task ID to reset
}

// ResetTimerOutput contains the result of resetting a timer.
type ResetTimerOutput struct {
	Task       *domain.Task // The task (nil if not found)
	WasRunning bool         // Whether a running timer was stopped
}

// ResetTimer is the use case for restoring a task's counter to its baseline.
type ResetTimer struct {
	tasks   domain.TaskRepository
	file    domain.TaskFile
	tracker *Tracker
	logger  domain.Logger
}

// NewResetTimer creates a new ResetTimer use case.
func NewResetTimer(tasks domain.TaskRepository, file domain.TaskFile, tracker *Tracker, logger domain.Logger) *ResetTimer {
	return &ResetTimer{
		tasks:   tasks,
		file:    file,
		tracker: tracker,
		logger:  logger,
	}
}

// Execute stops the timer if it is running, sets the counter to the
// duration baseline and saves the list. The timer is not restarted.
func (uc *ResetTimer) Execute(_ context.Context, in ResetTimerInput) (*ResetTimerOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return &ResetTimerOutput{}, nil
	}

	wasRunning := uc.tracker.Cancel(in.TaskID)
	task.ResetTimer()

	if err := persist(uc.file, uc.tasks); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info(task.ID, "timer", "reset")
	}

	return &ResetTimerOutput{Task: task, WasRunning: wasRunning}, nil
}

// ToggleTimerInput contains the parameters for pausing or resuming a timer.
type ToggleTimerInput struct {
	TaskID int // Task ID to toggle
}

// ToggleTimerOutput contains the result of toggling a timer.
type ToggleTimerOutput struct {
	Task    *domain.Task // The task (nil if not found)
	Running bool         // Timer state after the toggle
}

// ToggleTimer is the use case for pausing a running timer or resuming a stopped one.
type ToggleTimer struct {
	tasks   domain.TaskRepository
	tracker *Tracker
}

// NewToggleTimer creates a new ToggleTimer use case.
func NewToggleTimer(tasks domain.TaskRepository, tracker *Tracker) *ToggleTimer {
	return &ToggleTimer{
		tasks:   tasks,
		tracker: tracker,
	}
}

// Execute pauses the timer (saving the list) or resumes it.
// Resuming a done task fails with domain.ErrTaskDone. Resuming with a
// counter at zero first restores it to the duration baseline.
func (uc *ToggleTimer) Execute(_ context.Context, in ToggleTimerInput) (*ToggleTimerOutput, error) {
	task := uc.tasks.Get(in.TaskID)
	if task == nil {
		return &ToggleTimerOutput{}, nil
	}

	if uc.tracker.Running(task.ID) {
		if _, err := uc.tracker.Stop(task.ID); err != nil {
			return nil, err
		}
		return &ToggleTimerOutput{Task: task, Running: false}, nil
	}

	if task.IsDone() {
		return nil, domain.ErrTaskDone
	}
	if task.RemainingSeconds <= 0 {
		task.ResetTimer()
	}
	if err := uc.tracker.Start(task.ID); err != nil {
		return nil, err
	}
	return &ToggleTimerOutput{Task: task, Running: true}, nil
}
