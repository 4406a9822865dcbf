// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from a TOML file.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoader creates a new Loader reading from the default config directory.
func NewLoader() *Loader {
	return &Loader{
		globalConfDir: DefaultConfigDir(),
	}
}

// NewLoaderWithDir creates a new Loader with a custom config directory.
// This is useful for testing.
func NewLoaderWithDir(globalConfDir string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
	}
}

// DefaultConfigDir returns the default config directory,
// $XDG_CONFIG_HOME/todo or ~/.config/todo.
// Returns "" if neither can be determined.
func DefaultConfigDir() string {
	configHome := os.Getenv(domain.ConfigDirEnv)
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir returns the default data directory,
// $XDG_DATA_HOME/todo or ~/.local/share/todo.
// Returns "" if neither can be determined.
func DefaultDataDir() string {
	dataHome := os.Getenv(domain.DataDirEnv)
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome)
}

// Path returns the config file path, or "" when no directory is available.
func (l *Loader) Path() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

// Load returns the configuration file merged over the defaults.
// A missing file yields the defaults.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	path := l.Path()
	if path == "" {
		return base, nil
	}

	file, err := l.loadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return base, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	return mergeConfigs(base, file), nil
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Values of the wrong type or outside the allowed set are reported and ignored.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
			continue
		}

		switch section {
		case "tasks":
			for k, v := range m {
				switch k {
				case "path":
					if s, ok := v.(string); ok {
						res.Tasks.Path = expandHome(s)
					} else {
						warnings = append(warnings, "invalid value for [tasks].path: want a string")
					}
				case "default_priority":
					s, _ := v.(string)
					p, err := domain.ParsePriority(s)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid value for [tasks].default_priority: %v", v))
						continue
					}
					res.Tasks.DefaultPriority = p
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tasks]: %s", k))
				}
			}
		case "tui":
			for k, v := range m {
				switch k {
				case "sort":
					s, _ := v.(string)
					order, err := domain.ParseSortOrder(s)
					if err != nil || s == "" {
						warnings = append(warnings, fmt.Sprintf("invalid value for [tui].sort: %v", v))
						continue
					}
					res.TUI.Sort = order
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [tui]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Tasks:    base.Tasks,
		TUI:      base.TUI,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Tasks.Path != "" {
		result.Tasks.Path = override.Tasks.Path
	}
	if override.Tasks.DefaultPriority != "" {
		result.Tasks.DefaultPriority = override.Tasks.DefaultPriority
	}
	if override.TUI.Sort != "" {
		result.TUI.Sort = override.TUI.Sort
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
