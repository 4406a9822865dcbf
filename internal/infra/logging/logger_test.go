package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, dataDir string) string {
	t.Helper()
	content, err := os.ReadFile(domain.LogPath(dataDir))
	require.NoError(t, err)
	return string(content)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info(1, "task", "test message")

	// Verify
	content := readLog(t, dataDir)
	assert.Contains(t, content, "[INFO]")
	assert.Contains(t, content, "[task-1]")
	assert.Contains(t, content, "[task]")
	assert.Contains(t, content, "test message")
}

func TestLogger_GlobalEntry(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Warn(0, "store", "global message")

	content := readLog(t, dataDir)
	assert.Contains(t, content, "[WARN] [global] [store] global message")
}

func TestLogger_LevelFiltering(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Debug(1, "task", "debug message")
	logger.Info(1, "task", "info message")
	logger.Warn(1, "task", "warn message")
	logger.Error(1, "task", "error message")

	// Verify (debug and info should be filtered)
	content := readLog(t, dataDir)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestLogger_DisabledWhenEmptyDataDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Should not panic
	logger.Info(1, "task", "test message")
	logger.Error(1, "task", "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	// Setup
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)
	logger.now = func() time.Time { return time.Date(2025, 12, 30, 9, 32, 51, 0, time.Local) }
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info(42, "timer", `started "my task"`)
	logger.Info(42, "timer", "stopped")

	// Verify
	lines := strings.Split(strings.TrimSpace(readLog(t, dataDir)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `[2025-12-30 09:32:51] [INFO] [task-42] [timer] started "my task"`, lines[0])
	assert.Equal(t, `[2025-12-30 09:32:51] [INFO] [task-42] [timer] stopped`, lines[1])
}

func TestLogger_CreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "todo")
	logger := New(dataDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info(1, "task", "test message")

	stat, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, stat.IsDir())
	assert.FileExists(t, domain.LogPath(dataDir))
}

func TestLogger_Close(t *testing.T) {
	dataDir := t.TempDir()
	logger := New(dataDir, slog.LevelInfo)

	logger.Info(1, "task", "test message")

	assert.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
	assert.FileExists(t, domain.LogPath(dataDir))
}
