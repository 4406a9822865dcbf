package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the configuration file.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewManager creates a new Manager for the default config directory.
func NewManager() *Manager {
	return &Manager{
		globalConfDir: DefaultConfigDir(),
	}
}

// NewManagerWithDir creates a new Manager with a custom config directory.
// This is useful for testing.
func NewManagerWithDir(globalConfDir string) *Manager {
	return &Manager{
		globalConfDir: globalConfDir,
	}
}

// ConfigInfo returns information about the config file.
func (m *Manager) ConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{
			Path:   "",
			Exists: false,
		}
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig creates the config file from the default template rendered with cfg.
func (m *Manager) InitConfig(cfg *domain.Config) error {
	if m.globalConfDir == "" {
		return errors.New("config directory not available")
	}
	path := filepath.Join(m.globalConfDir, domain.ConfigFileName)

	if _, err := os.Stat(path); err == nil {
		return domain.ErrConfigExists
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(m.globalConfDir, 0700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(cfg)
	return atomic.WriteFile(path, strings.NewReader(content))
}
