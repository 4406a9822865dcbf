package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_ConfigInfo(t *testing.T) {
	t.Run("returns info when file exists", func(t *testing.T) {
		dir := t.TempDir()
		configContent := "[log]\nlevel = \"debug\""
		writeConfig(t, dir, configContent)

		manager := NewManagerWithDir(dir)
		info := manager.ConfigInfo()

		assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), info.Path)
		assert.Equal(t, configContent, info.Content)
		assert.True(t, info.Exists)
	})

	t.Run("returns info when file does not exist", func(t *testing.T) {
		dir := t.TempDir()

		manager := NewManagerWithDir(dir)
		info := manager.ConfigInfo()

		assert.Equal(t, filepath.Join(dir, domain.ConfigFileName), info.Path)
		assert.Empty(t, info.Content)
		assert.False(t, info.Exists)
	})

	t.Run("returns empty info when dir is empty", func(t *testing.T) {
		manager := NewManagerWithDir("")
		info := manager.ConfigInfo()

		assert.Empty(t, info.Path)
		assert.False(t, info.Exists)
	})
}

func TestManager_InitConfig(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "todo")
		cfg := domain.NewDefaultConfig()

		manager := NewManagerWithDir(dir)
		err := manager.InitConfig(cfg)
		require.NoError(t, err)

		content, err := os.ReadFile(filepath.Join(dir, domain.ConfigFileName))
		require.NoError(t, err)
		assert.Contains(t, string(content), "[tasks]")
		assert.Contains(t, string(content), `default_priority = "medium"`)
	})

	t.Run("created file loads back cleanly", func(t *testing.T) {
		dir := t.TempDir()
		cfg := domain.NewDefaultConfig()
		cfg.TUI.Sort = domain.SortOldest

		require.NoError(t, NewManagerWithDir(dir).InitConfig(cfg))

		loaded, err := NewLoaderWithDir(dir).Load()
		require.NoError(t, err)
		assert.Empty(t, loaded.Warnings)
		assert.Equal(t, domain.SortOldest, loaded.TUI.Sort)
	})

	t.Run("returns error when file exists", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "existing")

		err := NewManagerWithDir(dir).InitConfig(domain.NewDefaultConfig())
		assert.ErrorIs(t, err, domain.ErrConfigExists)
	})

	t.Run("returns error without dir", func(t *testing.T) {
		err := NewManagerWithDir("").InitConfig(domain.NewDefaultConfig())
		assert.Error(t, err)
	})
}
