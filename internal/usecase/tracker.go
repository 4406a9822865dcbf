package usecase

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// Tracker owns the elapsed-time timers, at most one per task.
// A running timer adds one second to the task's counter every tick and
// re-arms itself while the task exists and is pending.
//
// Tracker is not safe for concurrent use. All calls and all tick actions
// must happen on the goroutine that owns the scheduler.
type Tracker struct {
	tasks     domain.TaskRepository
	file      domain.TaskFile
	scheduler domain.Scheduler
	logger    domain.Logger
	handles   map[int]domain.Timer
	onTick    func(*domain.Task)
	interval  time.Duration
}

// NewTracker creates a Tracker ticking once per domain.TickInterval.
// logger may be nil.
func NewTracker(tasks domain.TaskRepository, file domain.TaskFile, scheduler domain.Scheduler, logger domain.Logger) *Tracker {
	return &Tracker{
		tasks:     tasks,
		file:      file,
		scheduler: scheduler,
		logger:    logger,
		handles:   make(map[int]domain.Timer),
		interval:  domain.TickInterval,
	}
}

// OnTick registers fn to be called after every counter increment.
func (t *Tracker) OnTick(fn func(*domain.Task)) {
	t.onTick = fn
}

// Start begins tracking a pending task.
func (t *Tracker) Start(id int) error {
	if _, ok := t.handles[id]; ok {
		return domain.ErrTimerActive
	}
	task := t.tasks.Get(id)
	if task == nil {
		return domain.ErrTaskNotFound
	}
	if task.IsDone() {
		return domain.ErrTaskDone
	}

	t.arm(id)
	t.log(id, "started")
	return nil
}

// TrackPending starts a timer for every pending task that has none.
// Returns the ids that were started.
func (t *Tracker) TrackPending() []int {
	var started []int
	for _, task := range t.tasks.All() {
		if task.IsDone() || t.Running(task.ID) {
			continue
		}
		if err := t.Start(task.ID); err == nil {
			started = append(started, task.ID)
		}
	}
	return started
}

// Cancel stops the timer for id without saving.
// Returns false if no timer was active.
func (t *Tracker) Cancel(id int) bool {
	h, ok := t.handles[id]
	if !ok {
		return false
	}
	h.Stop()
	delete(t.handles, id)
	t.log(id, "stopped")
	return true
}

// Stop cancels the timer for id and saves the task list so the counter
// is not lost. Stopping a task without a timer does nothing.
func (t *Tracker) Stop(id int) (bool, error) {
	if !t.Cancel(id) {
		return false, nil
	}
	if err := persist(t.file, t.tasks); err != nil {
		return true, err
	}
	return true, nil
}

// StopAll cancels every timer and saves the task list once.
func (t *Tracker) StopAll() error {
	for _, id := range t.Active() {
		t.Cancel(id)
	}
	return persist(t.file, t.tasks)
}

// Running reports whether id has an active timer.
func (t *Tracker) Running(id int) bool {
	_, ok := t.handles[id]
	return ok
}

// Active returns the ids with an active timer, ascending.
func (t *Tracker) Active() []int {
	ids := make([]int, 0, len(t.handles))
	for id := range t.handles {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (t *Tracker) arm(id int) {
	t.handles[id] = t.scheduler.AfterFunc(t.interval, func() {
		t.tick(id)
	})
}

// tick runs once per interval for id. The task may have been deleted or
// completed since the timer was armed; then the timer simply ends.
func (t *Tracker) tick(id int) {
	task := t.tasks.Get(id)
	if task == nil || task.IsDone() {
		delete(t.handles, id)
		return
	}

	task.Tick()
	if t.onTick != nil {
		t.onTick(task)
	}
	t.arm(id)
}

func (t *Tracker) log(id int, msg string) {
	if t.logger != nil {
		t.logger.Debug(id, "timer", msg)
	}
}

// persist writes the full task list.
func persist(file domain.TaskFile, tasks domain.TaskRepository) error {
	if err := file.Save(tasks.All()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// isNotFound reports whether err means the target task does not exist.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrTaskNotFound)
}
