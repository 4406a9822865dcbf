package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// notFoundError reports a task id that does not exist.
type notFoundError struct {
	id int
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("task #%d not found", e.id)
}

func (e notFoundError) Unwrap() error {
	return domain.ErrTaskNotFound
}

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		From        string
		DryRun      bool
	}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		Long: `Create a new task.

The priority defaults to [tasks].default_priority from the config file.

Use --from to create several tasks from a markdown file. Each task starts
with a frontmatter block:

  ---
  title: Write report
  priority: high
  due: 2025-01-31
  ---
  The body becomes the description.

Either every task in the file is valid and all are created, or none is.

Examples:
  # Create a task
  todo add --title "Write report"

  # Create a task with details
  todo add --title "Write report" --body "Q1 numbers" --priority high --due 2025-01-31

  # Create tasks from a file
  todo add --from tasks.md

  # Validate a file without creating anything
  todo add --from tasks.md --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if opts.From != "" {
				return importTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}
			if opts.Title == "" {
				return errors.New("--title is required (or use --from)")
			}

			var priority domain.Priority
			if opts.Priority != "" {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				priority = p
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.AddTaskInput{
				Title:       opts.Title,
				Description: opts.Description,
				Priority:    priority,
				DueDate:     opts.Due,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "Task title")
	cmd.Flags().StringVarP(&opts.Description, "body", "b", "", "Task description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "Priority: low, medium or high")
	cmd.Flags().StringVar(&opts.Due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Create tasks from a markdown file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "With --from, validate without creating tasks")

	return cmd
}

// importTasksFromFile creates tasks from a markdown file.
func importTasksFromFile(cmd *cobra.Command, c *app.Container, path string, dryRun bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	uc := c.ImportTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{
		Content: string(content),
		DryRun:  dryRun,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	verb := "Created"
	if dryRun {
		verb = "Would create"
	}
	for _, task := range out.Tasks {
		_, _ = fmt.Fprintf(w, "%s task #%d: %s\n", verb, task.ID, task.Title)
	}
	return nil
}

// newEditCommand creates the edit command for editing task fields.
func newEditCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Title       string
		Description string
		Priority    string
		Due         string
		NoDue       bool
	}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task",
		Long: `Edit an existing task's title, description, priority or due date.

Only the flags given are changed. Status and elapsed time are not editable.

Examples:
  # Rename a task
  todo edit 1 --title "New title"

  # Raise the priority and set a due date
  todo edit 1 --priority high --due 2025-02-01

  # Clear the due date
  todo edit 1 --no-due`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			var fields domain.TaskFields
			if cmd.Flags().Changed("title") {
				fields.Title = &opts.Title
			}
			if cmd.Flags().Changed("body") {
				fields.Description = &opts.Description
			}
			if cmd.Flags().Changed("priority") {
				p, err := domain.ParsePriority(opts.Priority)
				if err != nil {
					return err
				}
				fields.Priority = &p
			}
			if cmd.Flags().Changed("due") {
				fields.DueDate = &opts.Due
			}
			if opts.NoDue {
				if fields.DueDate != nil {
					return errors.New("cannot use --due with --no-due")
				}
				empty := ""
				fields.DueDate = &empty
			}

			uc := c.EditTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.EditTaskInput{
				TaskID: taskID,
				Fields: fields,
			})
			if err != nil {
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&opts.Description, "body", "b", "", "New description")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "", "New priority: low, medium or high")
	cmd.Flags().StringVar(&opts.Due, "due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&opts.NoDue, "no-due", false, "Clear the due date")

	return cmd
}

// newListCommand creates the list command for listing tasks.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status   string
		Priority string
		Search   string
		Sort     string
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		Long: `List tasks with optional filters.

Search matches the title or description, ignoring case.
Tasks are ordered by creation time, newest first unless --sort oldest.

Examples:
  # List all tasks
  todo list

  # Open high priority tasks
  todo list --status pending --priority high

  # Search, oldest first
  todo ls --search report --sort oldest`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			query, err := buildQuery(opts.Status, opts.Priority, opts.Search, opts.Sort)
			if err != nil {
				return err
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Query: query})
			if err != nil {
				return err
			}

			printTaskList(cmd.OutOrStdout(), out.Tasks, c.Clock.Now())
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", "all", "Filter by status: all, pending or done")
	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", "all", "Filter by priority: all, low, medium or high")
	cmd.Flags().StringVarP(&opts.Search, "search", "q", "", "Filter by text in title or description")
	cmd.Flags().StringVar(&opts.Sort, "sort", "newest", "Sort order: newest or oldest")

	return cmd
}

// buildQuery parses the list filters.
func buildQuery(status, priority, search, order string) (domain.TaskQuery, error) {
	statusFilter, err := domain.ParseStatusFilter(status)
	if err != nil {
		return domain.TaskQuery{}, err
	}
	priorityFilter, err := domain.ParsePriorityFilter(priority)
	if err != nil {
		return domain.TaskQuery{}, err
	}
	sortOrder, err := domain.ParseSortOrder(order)
	if err != nil {
		return domain.TaskQuery{}, err
	}
	return domain.TaskQuery{
		Status:   statusFilter,
		Priority: priorityFilter,
		Search:   search,
		Order:    sortOrder,
	}, nil
}

// printTaskList prints tasks in a table.
func printTaskList(w io.Writer, tasks []*domain.Task, now time.Time) {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(w, "No tasks found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tSTATUS\tPRIORITY\tDUE\tELAPSED\tCREATED\tTITLE")

	for _, task := range tasks {
		due := "-"
		if task.HasDueDate() {
			due = task.DueDate
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Status,
			task.Priority,
			due,
			task.Elapsed(),
			humanize.RelTime(task.CreatedAt, now, "ago", "from now"),
			task.Title,
		)
	}

	_ = tw.Flush()
}

// newShowCommand creates the show command for displaying task details.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Display task details",
		Long: `Display detailed information about a task.

Examples:
  # Show task by ID
  todo show 1

  # Show task using # prefix
  todo show "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			printTaskDetails(cmd.OutOrStdout(), out, c.Clock.Now())
			return nil
		},
	}

	return cmd
}

// printTaskDetails prints a single task.
func printTaskDetails(w io.Writer, out *usecase.ShowTaskOutput, now time.Time) {
	task := out.Task

	// Header
	_, _ = fmt.Fprintf(w, "# Task %d: %s\n\n", task.ID, task.Title)

	// Description
	if task.Description != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", task.Description)
	}

	// Fields
	_, _ = fmt.Fprintf(w, "Status: %s\n", task.Status)
	_, _ = fmt.Fprintf(w, "Priority: %s\n", task.Priority)

	if task.HasDueDate() {
		_, _ = fmt.Fprintf(w, "Due: %s\n", task.DueDate)
	} else {
		_, _ = fmt.Fprintln(w, "Due: none")
	}

	_, _ = fmt.Fprintf(w, "Created: %s (%s)\n",
		task.CreatedAt.Format(time.RFC3339),
		humanize.RelTime(task.CreatedAt, now, "ago", "from now"))

	elapsed := task.Elapsed()
	if out.Running {
		elapsed += " (running)"
	}
	_, _ = fmt.Fprintf(w, "Elapsed: %s\n", elapsed)

	if task.DurationSeconds > 0 {
		_, _ = fmt.Fprintf(w, "Baseline: %s\n", domain.FormatDuration(task.DurationSeconds))
	}
}

// newDoneCommand creates the done command for completing tasks.
func newDoneCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done",
		Long: `Mark a pending task as done.

A running timer is stopped and the elapsed time is cleared.

Examples:
  todo done 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.MarkDoneUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.MarkDoneInput{TaskID: taskID})
			if err != nil {
				if errors.Is(err, domain.ErrInvalidTransition) {
					return fmt.Errorf("task #%d is already done", taskID)
				}
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newUndoCommand creates the undo command for reopening tasks.
func newUndoCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <id>",
		Short: "Reopen a done task",
		Long: `Move a done task back to pending.

If the elapsed time is zero it is restored to the task's baseline.

Examples:
  todo undo 1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.UndoTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.UndoTaskInput{TaskID: taskID})
			if err != nil {
				if errors.Is(err, domain.ErrInvalidTransition) {
					return fmt.Errorf("task #%d is not done", taskID)
				}
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reopened task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newRmCommand creates the rm command for deleting tasks.
func newRmCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task. Its id is not reused while a larger id exists.

Examples:
  # Delete task by ID
  todo rm 1

  # Delete task using # prefix
  todo rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := parseTaskID(args[0])
			if err != nil {
				return fmt.Errorf("invalid task ID: %w", err)
			}

			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{TaskID: taskID})
			if err != nil {
				return err
			}
			if out.Task == nil {
				return notFoundError{id: taskID}
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d: %s\n", out.Task.ID, out.Task.Title)
			return nil
		},
	}

	return cmd
}

// newStatsCommand creates the stats command for the task overview.
func newStatsCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.Overview.String())
			return nil
		},
	}

	return cmd
}

// parseTaskID parses a task ID string to int.
func parseTaskID(s string) (int, error) {
	// Remove leading # if present
	s = strings.TrimPrefix(s, "#")
	var id int
	_, err := fmt.Sscanf(s, "%d", &id)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("task ID must be positive")
	}
	return id, nil
}
