package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// newConfigCommand creates the config command.
func newConfigCommand(c *app.Container) *cobra.Command {
	var initConfig bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the config file",
		Long: `Display the config file location and the effective configuration.

Use --init to write a config file with the default settings.

Examples:
  # Show configuration
  todo config

  # Create the config file
  todo config --init`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if initConfig {
				return runConfigInit(cmd, c)
			}

			uc := c.ShowConfigUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowConfigInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()

			_, _ = fmt.Fprintln(w, "[Loaded from]")
			if out.File.Exists {
				_, _ = fmt.Fprintf(w, "- %s\n", out.File.Path)
			} else {
				_, _ = fmt.Fprintf(w, "- %s (not found)\n", out.File.Path)
			}
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Tasks File]")
			_, _ = fmt.Fprintf(w, "- %s\n", out.TasksPath)
			_, _ = fmt.Fprintln(w)

			_, _ = fmt.Fprintln(w, "[Effective Config]")
			return formatEffectiveConfig(w, out.Effective)
		},
	}

	cmd.Flags().BoolVar(&initConfig, "init", false, "Create the config file with default settings")

	return cmd
}

// runConfigInit writes the default config file.
func runConfigInit(cmd *cobra.Command, c *app.Container) error {
	uc := c.InitConfigUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.InitConfigInput{})
	if err != nil {
		if errors.Is(err, domain.ErrConfigExists) {
			return fmt.Errorf("%w: %s", err, c.ConfigManager.ConfigInfo().Path)
		}
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created config file: %s\n", out.Path)
	return nil
}

// formatEffectiveConfig writes cfg as TOML.
func formatEffectiveConfig(w io.Writer, cfg *domain.Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))
	return nil
}
