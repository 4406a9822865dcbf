package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
)

// mockLaunchTUI replaces launchTUIFunc and reports whether it was called.
func mockLaunchTUI(t *testing.T) *bool {
	t.Helper()
	original := launchTUIFunc
	called := false
	launchTUIFunc = func(*app.Container) error {
		called = true
		return nil
	}
	t.Cleanup(func() {
		launchTUIFunc = original
	})
	return &called
}

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Setup
	called := mockLaunchTUI(t)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})

	// Execute
	err := root.Execute()

	// Assert
	assert.NoError(t, err)
	assert.True(t, *called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_TUICommand_LaunchesTUI(t *testing.T) {
	called := mockLaunchTUI(t)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"tui"})

	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, *called)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	// Setup
	called := mockLaunchTUI(t)
	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})

	// Execute
	err := root.Execute()

	// Assert
	assert.NoError(t, err)
	assert.False(t, *called, "launchTUIFunc should not be called with --help")
	output := buf.String()
	assert.Contains(t, output, "Task Management:")
	assert.Contains(t, output, "Time Tracking:")
	assert.Contains(t, output, "Setup Commands:")
	assert.Contains(t, output, "--file")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	err := root.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_HasSubcommands(t *testing.T) {
	root := NewRootCommand(nil, "test-version")

	for _, name := range []string{"add", "edit", "list", "show", "done", "undo", "rm", "stats", "tui", "track", "reset", "config"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}

	for alias, name := range map[string]string{"ls": "list", "delete": "rm"} {
		cmd, _, err := root.Find([]string{alias})
		require.NoError(t, err, alias)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	// Setup
	env := newTestEnv()
	env.container.AppConfig.Warnings = []string{"unknown section: colors"}
	root := NewRootCommand(env.container, "test-version")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"stats"})

	// Execute
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Warning: unknown section: colors\n", stderr.String())
	assert.Contains(t, stdout.String(), "Total: 0")
}

func TestNewRootCommand_FileFlagAccepted(t *testing.T) {
	env := newTestEnv()
	root := NewRootCommand(env.container, "test-version")
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--file", "/tmp/other.json", "stats"})

	err := root.Execute()

	assert.NoError(t, err)
}
