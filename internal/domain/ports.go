package domain

import "time"

// TaskRepository is the in-memory working set of tasks for a session.
// Methods that take an id treat a missing id as a no-op and report it
// through a nil task or false result.
type TaskRepository interface {
	// Get returns the task with the given id, or nil.
	Get(id int) *Task

	// All returns every task in insertion order.
	All() []*Task

	// Add appends a task. The id must already be allocated via NextID.
	Add(task *Task) error

	// Update applies fields to a task in place.
	Update(id int, fields TaskFields) (*Task, bool)

	// Remove deletes a task. Returns false if it was absent.
	Remove(id int) bool

	// MarkDone transitions a task to done.
	MarkDone(id int) (*Task, error)

	// Undo transitions a done task back to pending.
	Undo(id int) (*Task, error)

	// Query returns a filtered, sorted projection. It never mutates the store.
	Query(q TaskQuery) []*Task

	// NextID returns the id for the next task.
	NextID() int
}

// TaskFile persists the full task list.
type TaskFile interface {
	// Load reads every task, recovering from missing or corrupt files.
	Load() ([]*Task, error)

	// Save replaces the file contents with tasks.
	Save(tasks []*Task) error

	// Path returns the location of the file.
	Path() string
}

// Scheduler runs delayed actions one at a time on its owner's thread of control.
type Scheduler interface {
	// AfterFunc arranges for fn to run once after d.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a pending scheduled action.
type Timer interface {
	// Stop cancels the action. Stopping a fired or stopped timer is a no-op.
	Stop()
}

// Logger writes operational log entries.
type Logger interface {
	Debug(taskID int, category, msg string)
	Info(taskID int, category, msg string)
	Warn(taskID int, category, msg string)
	Error(taskID int, category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the configuration merged over the defaults.
	Load() (*Config, error)
}

// ConfigManager manages the configuration file.
type ConfigManager interface {
	// ConfigInfo returns information about the config file.
	ConfigInfo() ConfigInfo

	// InitConfig creates the config file from the default template.
	InitConfig(cfg *Config) error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
