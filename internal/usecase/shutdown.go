package usecase

import (
	"context"
)

// ShutdownInput contains the parameters for shutting down.
type ShutdownInput struct{}

// ShutdownOutput contains the result of shutting down.
type ShutdownOutput struct {
	Stopped []int // Task IDs whose timers were stopped
}

// Shutdown stops every timer and saves the task list once.
type Shutdown struct {
	tracker *Tracker
}

// NewShutdown creates a new Shutdown use case.
func NewShutdown(tracker *Tracker) *Shutdown {
	return &Shutdown{
		tracker: tracker,
	}
}

// Execute stops all timers and saves.
func (uc *Shutdown) Execute(_ context.Context, _ ShutdownInput) (*ShutdownOutput, error) {
	stopped := uc.tracker.Active()
	if err := uc.tracker.StopAll(); err != nil {
		return nil, err
	}
	return &ShutdownOutput{Stopped: stopped}, nil
}
