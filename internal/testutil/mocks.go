// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskFile is a test double for domain.TaskFile.
// Fields are ordered to minimize memory padding.
type MockTaskFile struct {
	LoadErr   error
	SaveErr   error
	Tasks     []*domain.Task // Returned by Load
	Saved     []*domain.Task // Copy of the tasks passed to the last Save
	PathValue string
	Saves     int // Number of Save calls
}

// Ensure MockTaskFile implements domain.TaskFile interface.
var _ domain.TaskFile = (*MockTaskFile)(nil)

// NewMockTaskFile creates a MockTaskFile that loads tasks.
func NewMockTaskFile(tasks ...*domain.Task) *MockTaskFile {
	return &MockTaskFile{
		Tasks:     tasks,
		PathValue: "/test/tasks.json",
	}
}

// Load returns the configured tasks or error.
func (m *MockTaskFile) Load() ([]*domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Tasks == nil {
		return []*domain.Task{}, nil
	}
	return m.Tasks, nil
}

// Save records a snapshot of tasks.
func (m *MockTaskFile) Save(tasks []*domain.Task) error {
	m.Saves++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saved = make([]*domain.Task, 0, len(tasks))
	for _, t := range tasks {
		m.Saved = append(m.Saved, t.Clone())
	}
	return nil
}

// Path returns the configured path.
func (m *MockTaskFile) Path() string {
	return m.PathValue
}

// SavedTask returns the task with id from the last save, or nil.
func (m *MockTaskFile) SavedTask(id int) *domain.Task {
	for _, t := range m.Saved {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// FakeScheduler is a manual-clock domain.Scheduler.
// Actions run synchronously inside Advance, in due-time order.
type FakeScheduler struct {
	actions []*fakeAction
	now     time.Duration
	seq     int
}

type fakeAction struct {
	fn    func()
	owner *FakeScheduler
	at    time.Duration
	seq   int
}

// Ensure FakeScheduler implements domain.Scheduler interface.
var _ domain.Scheduler = (*FakeScheduler)(nil)

// NewFakeScheduler creates a FakeScheduler at time zero.
func NewFakeScheduler() *FakeScheduler {
	return &FakeScheduler{}
}

// AfterFunc registers fn to run once the clock has advanced by d.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) domain.Timer {
	s.seq++
	a := &fakeAction{fn: fn, owner: s, at: s.now + d, seq: s.seq}
	s.actions = append(s.actions, a)
	return a
}

// Stop removes the action if it is still pending.
func (a *fakeAction) Stop() {
	a.owner.remove(a)
}

func (s *FakeScheduler) remove(a *fakeAction) bool {
	for i, p := range s.actions {
		if p == a {
			s.actions = append(s.actions[:i], s.actions[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by d, running every action that falls due.
// Actions scheduled by running actions also run if they fall due within d.
func (s *FakeScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.remove(next)
		s.now = next.at
		next.fn()
	}
	s.now = target
}

func (s *FakeScheduler) nextDue(limit time.Duration) *fakeAction {
	var next *fakeAction
	for _, a := range s.actions {
		if a.at > limit {
			continue
		}
		if next == nil || a.at < next.at || (a.at == next.at && a.seq < next.seq) {
			next = a
		}
	}
	return next
}

// Pending returns the number of scheduled actions that have not run.
func (s *FakeScheduler) Pending() int {
	return len(s.actions)
}

// LogEntry is one recorded MockLogger call.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
	TaskID   int
}

// String formats the entry like the file logger, without the timestamp.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [task-%d] [%s] %s", e.Level, e.TaskID, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records entries.
type MockLogger struct {
	Entries []LogEntry
}

// Ensure MockLogger implements domain.Logger interface.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) record(level string, taskID int, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, TaskID: taskID, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(taskID int, category, msg string) {
	m.record("DEBUG", taskID, category, msg)
}

// Info records an info entry.
func (m *MockLogger) Info(taskID int, category, msg string) {
	m.record("INFO", taskID, category, msg)
}

// Warn records a warning entry.
func (m *MockLogger) Warn(taskID int, category, msg string) {
	m.record("WARN", taskID, category, msg)
}

// Error records an error entry.
func (m *MockLogger) Error(taskID int, category, msg string) {
	m.record("ERROR", taskID, category, msg)
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// NewMockConfigLoader creates a new MockConfigLoader with default config.
func NewMockConfigLoader() *MockConfigLoader {
	return &MockConfigLoader{
		Config: domain.NewDefaultConfig(),
	}
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config or error.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitWith   *domain.Config // Config passed to the last InitConfig call
	Info       domain.ConfigInfo
	InitCalled bool
}

// NewMockConfigManager creates a new MockConfigManager.
func NewMockConfigManager() *MockConfigManager {
	return &MockConfigManager{
		Info: domain.ConfigInfo{
			Path:   "/home/test/.config/todo/config.toml",
			Exists: false,
		},
	}
}

// Ensure MockConfigManager implements domain.ConfigManager interface.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// ConfigInfo returns the configured config info.
func (m *MockConfigManager) ConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call and returns configured error.
func (m *MockConfigManager) InitConfig(cfg *domain.Config) error {
	m.InitCalled = true
	m.InitWith = cfg
	return m.InitErr
}
