package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/runoshun/todo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeDetail:
		content = m.viewDetail()
	case ModeForm:
		content = m.viewForm()
	case ModeNormal, ModeSearch, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	if m.mode == ModeSearch {
		b.WriteString(m.styles.InputPrompt.Render("Search: "))
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	} else if m.query.Search != "" {
		b.WriteString(m.styles.Footer.Render("Search: "+m.query.Search) + "\n\n")
	}

	if len(m.tasks) == 0 {
		b.WriteString(m.viewEmptyState())
	} else {
		b.WriteString(m.taskList.View())
	}

	if m.mode == ModeConfirm {
		b.WriteString("\n\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders "Tasks", the active filters and the visible count.
func (m *Model) viewHeader() string {
	left := m.styles.HeaderText.Render("Tasks") + "  " + m.styles.FilterTag.Render(fmt.Sprintf(
		"[status:%s] [priority:%s] [%s]", m.query.Status, m.query.Priority, m.query.Order))

	countText := fmt.Sprintf("showing %d of %d", len(m.tasks), m.overview.Total)
	right := lipgloss.NewStyle().Foreground(Colors.Muted).Render(countText)

	headerWidth := m.width - 4
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return m.styles.Header.Render(left + strings.Repeat(" ", spacing) + right)
}

// viewEmptyState renders the message shown when no task matches.
func (m *Model) viewEmptyState() string {
	var b strings.Builder
	b.WriteString("\n")
	if m.overview.Total > 0 {
		b.WriteString(m.styles.Footer.Render("  No tasks match the current filters"))
		b.WriteString("\n")
		return b.String()
	}
	b.WriteString(m.styles.Footer.Render("  No tasks yet\n\n"))
	b.WriteString(m.styles.Footer.Render("  Press "))
	b.WriteString(m.styles.FooterKey.Render("n"))
	b.WriteString(m.styles.Footer.Render(" to create your first task"))
	b.WriteString("\n")
	return b.String()
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
	}

	target := fmt.Sprintf("task #%d", m.confirmTaskID)
	if task := m.container.Tasks.Get(m.confirmTaskID); task != nil {
		target = fmt.Sprintf("task #%d %q", task.ID, truncate(escapeNewlines(task.Title), 40))
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).Render("Delete " + target + "?")
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")
	buttons := lipgloss.JoinHorizontal(lipgloss.Left,
		m.styles.HelpKey.Render("[ y ] Confirm"), "  ", m.styles.Footer.Render("[ n ] Cancel"))

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewForm renders the add/edit form.
func (m *Model) viewForm() string {
	heading := "◆ New Task"
	if m.editTaskID != 0 {
		heading = fmt.Sprintf("◆ Edit Task #%d", m.editTaskID)
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render(heading))
	b.WriteString("\n\n")
	if m.form != nil {
		b.WriteString(m.form.View())
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("enter next · esc cancel"))
	return m.styles.Dialog.Render(b.String())
}

// viewFooter renders the overview and key hints.
func (m *Model) viewFooter() string {
	overview := m.styles.Footer.Render(m.overview.String())
	switch m.mode {
	case ModeNormal:
		return overview + "\n" + m.help.ShortHelpView(m.keys.ShortHelp())
	case ModeSearch:
		return overview + "\n" + m.styles.Footer.Render("enter keep · esc clear")
	case ModeConfirm, ModeForm, ModeHelp, ModeDetail:
		// Hints are shown in the dialogs/views themselves
	}
	return overview
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	content := m.help.FullHelpView(m.keys.FullHelp())
	footer := m.styles.Footer.Render("[?/esc] close")

	return m.styles.Dialog.
		BorderForeground(Colors.Primary).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, "", content, "", footer))
}

// viewDetail renders the task detail view.
func (m *Model) viewDetail() string {
	task := m.SelectedTask()
	if task == nil {
		return "No task selected"
	}

	var b strings.Builder
	labelStyle := m.styles.DetailLabel
	valueStyle := m.styles.DetailValue

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(valueStyle.Render(value))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.DetailTitle.Render(fmt.Sprintf("Task #%d", task.ID)))
	b.WriteString("\n")
	b.WriteString(m.styles.HeaderText.Render(task.Title))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Status"))
	b.WriteString(m.styles.StatusStyle(task.Status).Render(task.Status.Display()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Priority"))
	b.WriteString(m.styles.PriorityBadge(task).Render(PriorityLabel(task.Priority)))
	b.WriteString("\n")

	due := "none"
	if task.HasDueDate() {
		due = task.DueDate
	}
	row("Due", due)

	created := task.CreatedAt.Format("2006-01-02 15:04")
	if m.container.Clock != nil {
		created += " (" + humanize.RelTime(task.CreatedAt, m.container.Clock.Now(), "ago", "from now") + ")"
	}
	row("Created", created)

	elapsed := task.Elapsed()
	if m.container.Tracker.Running(task.ID) {
		b.WriteString(labelStyle.Render("Elapsed"))
		b.WriteString(m.styles.ElapsedRunning.Render("▶ " + elapsed))
		b.WriteString("\n")
	} else {
		row("Elapsed", elapsed)
	}
	if task.DurationSeconds > 0 {
		row("Baseline", domain.FormatDuration(task.DurationSeconds))
	}

	if task.Description != "" {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Description"))
		b.WriteString("\n")
		b.WriteString(m.styles.DetailDesc.Render(task.Description))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.ErrorMsg.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("[space] timer  [esc] back"))

	return m.styles.Dialog.
		Width(m.width - 4).
		BorderForeground(Colors.Muted).
		Render(b.String())
}
