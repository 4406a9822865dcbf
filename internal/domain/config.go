package domain

import (
	"bytes"
	_ "embed"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Tasks    TasksConfig `toml:"tasks"`
	TUI      TUIConfig   `toml:"tui"`
	Log      LogConfig   `toml:"log"`
}

// TasksConfig holds settings for task storage from [tasks] section.
type TasksConfig struct {
	Path            string   `toml:"path,omitempty"`             // Tasks file (default: <data dir>/tasks.json)
	DefaultPriority Priority `toml:"default_priority,omitempty"` // Priority for new tasks (default: medium)
}

// TUIConfig holds settings for the TUI from [tui] section.
type TUIConfig struct {
	Sort SortOrder `toml:"sort,omitempty"` // Initial sort order: newest (default) or oldest
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
}

// Default configuration values.
const (
	DefaultLogLevel  = "info"
	DefaultPriority  = PriorityMedium
	DefaultSortOrder = SortNewest
	AppDirName       = "todo"
	ConfigFileName   = "config.toml"
	TasksFileName    = "tasks.json"
	LogFileName      = "todo.log"
	BackupSuffix     = ".bak"
	ConfigDirEnv     = "XDG_CONFIG_HOME"
	DataDirEnv       = "XDG_DATA_HOME"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Tasks: TasksConfig{
			DefaultPriority: DefaultPriority,
		},
		TUI: TUIConfig{
			Sort: DefaultSortOrder,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// TasksPath returns the configured tasks file, falling back to dataDir/tasks.json.
func (c *Config) TasksPath(dataDir string) string {
	if c.Tasks.Path != "" {
		return c.Tasks.Path
	}
	return filepath.Join(dataDir, TasksFileName)
}

// GlobalConfigDir returns the config directory under configHome.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the config file path under configHome.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// DataDir returns the data directory under dataHome.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// LogPath returns the log file path in dataDir.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, LogFileName)
}

// BackupPath returns the path a corrupt tasks file is copied to.
func BackupPath(tasksPath string) string {
	return tasksPath + BackupSuffix
}

// RenderConfigTemplate renders the default config file for cfg.
func RenderConfigTemplate(cfg *Config) string {
	tmpl := template.Must(template.New("config").Parse(configTemplateContent))
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return configTemplateContent
	}
	return buf.String()
}
