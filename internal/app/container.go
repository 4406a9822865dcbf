// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/jsonstore"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/infra/scheduler"
	"github.com/runoshun/todo/internal/usecase"
)

// Options selects the directories and files the container uses.
// Empty fields fall back to the XDG defaults and the config file.
type Options struct {
	ConfigDir string // Config directory (default: $XDG_CONFIG_HOME/todo)
	DataDir   string // Data directory for tasks.json and todo.log (default: $XDG_DATA_HOME/todo)
	TasksPath string // Tasks file, overriding [tasks].path
}

// Config holds the resolved application paths.
type Config struct {
	ConfigDir string // Config directory
	DataDir   string // Data directory
	TasksPath string // Tasks file in use
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskRepository
	TaskFile      domain.TaskFile
	Scheduler     domain.Scheduler
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Tracker   *usecase.Tracker
	Loop      *scheduler.Loop // nil when built with NewWithDeps
	AppConfig *domain.Config
	logger    *logging.Logger

	// Configuration
	Config Config
}

// New loads configuration and the task file and wires the real implementations.
func New(opts Options) (*Container, error) {
	cfg := Config{
		ConfigDir: opts.ConfigDir,
		DataDir:   opts.DataDir,
	}
	if cfg.ConfigDir == "" {
		cfg.ConfigDir = config.DefaultConfigDir()
	}
	if cfg.DataDir == "" {
		cfg.DataDir = config.DefaultDataDir()
	}

	configLoader := config.NewLoaderWithDir(cfg.ConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	cfg.TasksPath = opts.TasksPath
	if cfg.TasksPath == "" {
		cfg.TasksPath = appConfig.TasksPath(cfg.DataDir)
	}

	logger := logging.New(cfg.DataDir, logging.ParseLevel(appConfig.Log.Level))
	for _, w := range appConfig.Warnings {
		logger.Warn(0, "config", w)
	}

	taskFile := jsonstore.New(cfg.TasksPath, logger)
	tasks, err := taskFile.Load()
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	store := memstore.New(tasks)

	loop := scheduler.New()

	return &Container{
		Tasks:         store,
		TaskFile:      taskFile,
		Scheduler:     loop,
		Clock:         domain.RealClock{},
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithDir(cfg.ConfigDir),
		Tracker:       usecase.NewTracker(store, taskFile, loop, logger),
		Loop:          loop,
		AppConfig:     appConfig,
		logger:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, tasks domain.TaskRepository, file domain.TaskFile, sched domain.Scheduler, clock domain.Clock, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Tasks:     tasks,
		TaskFile:  file,
		Scheduler: sched,
		Clock:     clock,
		Logger:    logger,
		Tracker:   usecase.NewTracker(tasks, file, sched, logger),
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// Close releases the scheduler and the log file.
func (c *Container) Close() error {
	if c.Loop != nil {
		c.Loop.Close()
	}
	if c.logger != nil {
		return c.logger.Close()
	}
	return nil
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.TaskFile, c.Tracker, c.Clock, c.Logger, c.AppConfig.Tasks.DefaultPriority)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks, c.TaskFile, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.TaskFile, c.Tracker, c.Logger)
}

// MarkDoneUseCase returns a new MarkDone use case.
func (c *Container) MarkDoneUseCase() *usecase.MarkDone {
	return usecase.NewMarkDone(c.Tasks, c.TaskFile, c.Tracker, c.Logger)
}

// UndoTaskUseCase returns a new UndoTask use case.
func (c *Container) UndoTaskUseCase() *usecase.UndoTask {
	return usecase.NewUndoTask(c.Tasks, c.TaskFile, c.Tracker, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Tracker)
}

// StartTimerUseCase returns a new StartTimer use case.
func (c *Container) StartTimerUseCase() *usecase.StartTimer {
	return usecase.NewStartTimer(c.Tasks, c.Tracker)
}

// StopTimerUseCase returns a new StopTimer use case.
func (c *Container) StopTimerUseCase() *usecase.StopTimer {
	return usecase.NewStopTimer(c.Tasks, c.Tracker)
}

// ResetTimerUseCase returns a new ResetTimer use case.
func (c *Container) ResetTimerUseCase() *usecase.ResetTimer {
	return usecase.NewResetTimer(c.Tasks, c.TaskFile, c.Tracker, c.Logger)
}

// ToggleTimerUseCase returns a new ToggleTimer use case.
func (c *Container) ToggleTimerUseCase() *usecase.ToggleTimer {
	return usecase.NewToggleTimer(c.Tasks, c.Tracker)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.Tasks, c.TaskFile, c.Clock, c.Logger, c.AppConfig.Tasks.DefaultPriority)
}

// ShutdownUseCase returns a new Shutdown use case.
func (c *Container) ShutdownUseCase() *usecase.Shutdown {
	return usecase.NewShutdown(c.Tracker)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader, c.TaskFile)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
