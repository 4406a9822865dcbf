// Package cli provides the command-line interface for todo.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupTimer = "timer"
	groupSetup = "setup"
)

// FileFlag is the global flag selecting the tasks file.
// main reads it before the container is built.
const FileFlag = "file"

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

// NewRootCommand creates the root command for todo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	var tasksFile string

	root := &cobra.Command{
		Use:   "todo",
		Short: "Task manager with per-task time tracking",
		Long: `todo keeps a list of tasks in a local JSON file and tracks how long
each open task has been worked on.

Run without arguments to open the interactive TUI. Every open task in the
TUI accumulates elapsed time once per second until it is paused, marked
done or deleted.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&tasksFile, FileFlag, "", "Tasks file (default: $XDG_DATA_HOME/todo/tasks.json)")

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupTimer, Title: "Time Tracking:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	// Task commands
	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	editCmd := newEditCommand(c)
	editCmd.GroupID = groupTask

	listCmd := newListCommand(c)
	listCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	doneCmd := newDoneCommand(c)
	doneCmd.GroupID = groupTask

	undoCmd := newUndoCommand(c)
	undoCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	statsCmd := newStatsCommand(c)
	statsCmd.GroupID = groupTask

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupTask

	// Timer commands
	trackCmd := newTrackCommand(c)
	trackCmd.GroupID = groupTimer

	resetCmd := newResetCommand(c)
	resetCmd.GroupID = groupTimer

	// Setup commands
	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	root.AddCommand(
		addCmd,
		editCmd,
		listCmd,
		showCmd,
		doneCmd,
		undoCmd,
		rmCmd,
		statsCmd,
		tuiCmd,
		trackCmd,
		resetCmd,
		configCmd,
	)

	return root
}
