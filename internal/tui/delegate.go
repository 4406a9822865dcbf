package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/todo/internal/domain"
)

type taskItem struct {
	task *domain.Task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// truncate shortens s to fit width display cells.
func truncate(s string, width int) string {
	if width < 10 {
		width = 10
	}
	if runewidth.StringWidth(s) > width {
		return runewidth.Truncate(s, width, "...")
	}
	return s
}

type taskDelegate struct {
	running func(id int) bool
	styles  Styles
}

func newTaskDelegate(styles Styles, running func(id int) bool) taskDelegate {
	return taskDelegate{styles: styles, running: running}
}

func (d taskDelegate) Height() int {
	return 2
}

func (d taskDelegate) Spacing() int {
	return 1
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()
	listWidth := m.Width()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}

	// Right side: elapsed time, marked while the timer runs.
	elapsed := task.Elapsed()
	elapsedStyle := d.styles.Elapsed
	if d.running != nil && d.running(task.ID) {
		elapsed = "▶ " + elapsed
		elapsedStyle = d.styles.ElapsedRunning
	}
	right := elapsedStyle.Render(elapsed)

	prefix := fmt.Sprintf("  %s %s  %s %s  ",
		d.styles.SelectionIndicator.Bold(selected).Render(indicatorChar),
		d.styles.TaskID.Bold(selected).Render(fmt.Sprintf("%3d", task.ID)),
		d.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)),
		d.styles.PriorityBadge(task).Render(PriorityLabel(task.Priority)),
	)

	titleWidth := listWidth - lipgloss.Width(prefix) - lipgloss.Width(right) - 2
	title := truncate(escapeNewlines(task.Title), titleWidth)
	titleStyle := d.styles.TaskTitle
	if task.IsDone() {
		titleStyle = d.styles.TaskTitleDone
	}
	titlePart := titleStyle.Bold(selected).Render(title)

	line := prefix + titlePart
	if gap := listWidth - lipgloss.Width(line) - lipgloss.Width(right); gap > 0 {
		line += strings.Repeat(" ", gap)
	} else {
		line += " "
	}
	line += right
	_, _ = fmt.Fprintln(w, line)

	// Second line: description and due date.
	indent := strings.Repeat(" ", 8)
	var due string
	if task.HasDueDate() {
		due = d.styles.TaskDue.Render("due " + task.DueDate)
	}
	descWidth := listWidth - len(indent) - lipgloss.Width(due) - 2
	descLine := indent
	if task.Description != "" {
		descLine += truncate(escapeNewlines(task.Description), descWidth)
	}
	descLine = d.styles.TaskDesc.Render(descLine)
	if due != "" {
		if gap := listWidth - lipgloss.Width(descLine) - lipgloss.Width(due); gap > 0 {
			descLine += strings.Repeat(" ", gap)
		} else {
			descLine += " "
		}
		descLine += due
	}
	_, _ = fmt.Fprint(w, descLine)
}
