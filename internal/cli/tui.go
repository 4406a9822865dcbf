package cli

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/tui"
)

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running `todo` without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long: `Launch the interactive terminal user interface for managing tasks.

Timers start for every open task shown in the list. Quitting stops all
timers and saves the elapsed time.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
	return cmd
}

// launchTUI runs the TUI until the user quits.
func launchTUI(c *app.Container) error {
	if c == nil || c.Loop == nil {
		return errors.New("tui requires an initialized task store")
	}
	model := tui.New(c)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	if shutdownErr := model.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	return err
}
