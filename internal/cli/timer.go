package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// runLoopFunc runs the container's scheduler until ctx ends, allowing it to be mocked in tests.
var runLoopFunc = runLoop

func runLoop(ctx context.Context, c *app.Container) error {
	if c.Loop == nil {
		return errors.New("no scheduler available")
	}
	return c.Loop.Run(ctx)
}

// newTrackCommand creates the track command for timing tasks from the terminal.
func newTrackCommand(c *app.Container) *cobra.Command {
	var opts struct {
		For time.Duration
		All bool
	}

	cmd := &cobra.Command{
		Use:   "track [id...]",
		Short: "Track elapsed time in the foreground",
		Long: `Run timers for the given tasks until interrupted.

Each tracked task gains one second of elapsed time per second. On Ctrl-C,
SIGTERM or when --for expires, every timer is stopped and the elapsed
time is saved.

Examples:
  # Track one task until Ctrl-C
  todo track 3

  # Track every pending task for 25 minutes
  todo track --all --for 25m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := trackTargets(c, args, opts.All)
			if err != nil {
				return err
			}

			if err := checkTrackable(c, ids); err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			startUC := c.StartTimerUseCase()
			for i, id := range ids {
				out, err := startUC.Execute(cmd.Context(), usecase.StartTimerInput{TaskID: id})
				if err == nil && out.Task == nil {
					err = notFoundError{id: id}
				}
				if err != nil {
					for _, started := range ids[:i] {
						c.Tracker.Cancel(started)
					}
					return err
				}
				_, _ = fmt.Fprintf(w, "Tracking task #%d: %s (%s)\n", out.Task.ID, out.Task.Title, out.Task.Elapsed())
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if opts.For > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, opts.For)
				defer cancel()
			}

			runErr := runLoopFunc(ctx, c)
			if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
				runErr = nil
			}

			shutdownOut, err := c.ShutdownUseCase().Execute(context.WithoutCancel(ctx), usecase.ShutdownInput{})
			if err != nil {
				return err
			}
			printTrackSummary(cmd, c, shutdownOut.Stopped)
			return runErr
		},
	}

	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Track every pending task")
	cmd.Flags().DurationVar(&opts.For, "for", 0, "Stop after this long (e.g. 25m)")

	return cmd
}

// trackTargets resolves the ids to track.
func trackTargets(c *app.Container, args []string, all bool) ([]int, error) {
	if all && len(args) > 0 {
		return nil, errors.New("cannot use task IDs with --all")
	}
	if all {
		var ids []int
		for _, task := range c.Tasks.All() {
			if !task.IsDone() {
				ids = append(ids, task.ID)
			}
		}
		if len(ids) == 0 {
			return nil, errors.New("no pending tasks to track")
		}
		return ids, nil
	}
	if len(args) == 0 {
		return nil, errors.New("task ID is required (or use --all)")
	}

	ids := make([]int, 0, len(args))
	seen := make(map[int]bool, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid task ID: %w", err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

// checkTrackable reports the first id whose timer cannot be started,
// so that no timer runs when the command fails.
func checkTrackable(c *app.Container, ids []int) error {
	for _, id := range ids {
		task := c.Tasks.Get(id)
		switch {
		case task == nil:
			return notFoundError{id: id}
		case task.IsDone():
			return fmt.Errorf("task #%d is done", id)
		case c.Tracker.Running(id):
			return fmt.Errorf("task #%d: %w", id, domain.ErrTimerActive)
		}
	}
	return nil
}

// printTrackSummary prints the elapsed time of each stopped task.
func printTrackSummary(cmd *cobra.Command, c *app.Container, ids []int) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	for _, id := range ids {
		task := c.Tasks.Get(id)
		if task == nil {
			continue
		}
		_, _ = fmt.Fprintf(tw, "#%d\t%s\t%s\n", task.ID, task.Elapsed(), task.Title)
	}
	_ = tw.Flush()
}

// newResetCommand creates the reset command for restoring a task's elapsed time.
func newResetCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset <id>",
		Short: "Reset a task's elapsed time",
		Long: `Restore a task's elapsed time to its baseline.

Examples:
  todo reset 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.ResetTimerUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ResetTimerInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset task #%d to %s\n", out.Task.ID, out.Task.Elapsed())
			return nil
		},
	}

	return cmd
}
