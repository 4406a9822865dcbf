package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte(content), 0644)
	require.NoError(t, err)
}

func TestLoader_Load_NoFile(t *testing.T) {
	loader := NewLoaderWithDir(t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_EmptyDir(t *testing.T) {
	loader := NewLoaderWithDir("")

	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.NewDefaultConfig(), cfg)
	assert.Empty(t, loader.Path())
}

func TestLoader_Load_File(t *testing.T) {
	// Setup
	dir := t.TempDir()
	writeConfig(t, dir, `
[tasks]
path = "/srv/tasks.json"
default_priority = "High"

[tui]
sort = "oldest"

[log]
level = "debug"
`)

	// Execute
	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "/srv/tasks.json", cfg.Tasks.Path)
	assert.Equal(t, domain.PriorityHigh, cfg.Tasks.DefaultPriority)
	assert.Equal(t, domain.SortOldest, cfg.TUI.Sort)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[log]\nlevel = \"warn\"\n")

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, domain.PriorityMedium, cfg.Tasks.DefaultPriority)
	assert.Equal(t, domain.SortNewest, cfg.TUI.Sort)
	assert.Empty(t, cfg.Tasks.Path)
}

func TestLoader_Load_Warnings(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[tasks]
default_priority = "urgent"
colour = "red"

[tui]
sort = "random"

[extras]
foo = 1
`)

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"invalid value for [tasks].default_priority: urgent",
		"invalid value for [tui].sort: random",
		"unknown key in [tasks]: colour",
		"unknown section: extras",
	}, cfg.Warnings)
	assert.Equal(t, domain.PriorityMedium, cfg.Tasks.DefaultPriority)
	assert.Equal(t, domain.SortNewest, cfg.TUI.Sort)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[tasks\npath = ")

	_, err := NewLoaderWithDir(dir).Load()
	assert.Error(t, err)
}

func TestLoader_Load_ExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	dir := t.TempDir()
	writeConfig(t, dir, "[tasks]\npath = \"~/notes/tasks.json\"\n")

	cfg, err := NewLoaderWithDir(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "notes", "tasks.json"), cfg.Tasks.Path)
}

func TestDefaultDirs(t *testing.T) {
	t.Setenv(domain.ConfigDirEnv, "/xdg/config")
	t.Setenv(domain.DataDirEnv, "/xdg/data")

	assert.Equal(t, filepath.Join("/xdg/config", "todo"), DefaultConfigDir())
	assert.Equal(t, filepath.Join("/xdg/data", "todo"), DefaultDataDir())
	assert.Equal(t, filepath.Join("/xdg/config", "todo", "config.toml"), NewLoader().Path())
}
