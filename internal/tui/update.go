package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MsgTimerFired:
		// Timer actions run here so ticks never race with key handling.
		if msg.Run != nil {
			msg.Run()
		}
		return m, m.waitForTimer()

	case MsgTimersClosed:
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		if m.mode == ModeForm && m.form != nil {
			m.form = m.form.WithWidth(m.width - 4)
		}
		return m, nil
	}

	if m.mode == ModeForm && m.form != nil {
		return m.handleFormMsg(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

// handleKeyMsg handles keyboard input based on current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeSearch:
		return m.handleSearchMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeDetail:
		return m.handleDetailMode(msg)
	case ModeForm:
		// Handled in Update
	}
	return m, nil
}

// handleNormalMode handles keys in normal navigation mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.mode = ModeSearch
		m.searchInput.SetValue(m.query.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, m.keys.Status):
		m.query.Status = nextFilter(domain.StatusFilters, m.query.Status)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		m.query.Priority = nextFilter(domain.PriorityFilters, m.query.Priority)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Sort):
		m.query.Order = m.query.Order.Toggle()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.New):
		return m, m.openNewForm()
	}

	// Remaining actions need a selected task.
	task := m.SelectedTask()
	if task == nil {
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Detail):
		m.mode = ModeDetail
		return m, nil

	case key.Matches(msg, m.keys.Edit):
		return m, m.openEditForm(task)

	case key.Matches(msg, m.keys.Done):
		m.toggleDone(task)
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.toggleTimer(task)
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.resetTimer(task)
		return m, nil
	}

	var cmd tea.Cmd
	m.taskList, cmd = m.taskList.Update(msg)
	return m, cmd
}

// handleSearchMode updates the search query as the user types.
func (m *Model) handleSearchMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.query.Search = ""
		m.mode = ModeNormal
		m.refresh()
		return m, nil
	case "enter":
		m.searchInput.Blur()
		m.mode = ModeNormal
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	if m.searchInput.Value() != m.query.Search {
		m.query.Search = m.searchInput.Value()
		m.refresh()
	}
	return m, cmd
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		action, id := m.confirmAction, m.confirmTaskID
		m.closeConfirm()
		if action == ConfirmDelete {
			m.deleteTask(id)
		}
		return m, nil

	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Escape):
		m.closeConfirm()
		return m, nil
	}
	return m, nil
}

func (m *Model) closeConfirm() {
	m.mode = ModeNormal
	m.confirmAction = ConfirmNone
	m.confirmTaskID = 0
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	}
	return m, nil
}

// handleDetailMode handles keys in the detail view.
func (m *Model) handleDetailMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Detail), key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
	case key.Matches(msg, m.keys.Toggle):
		if task := m.SelectedTask(); task != nil {
			m.toggleTimer(task)
		}
	}
	return m, nil
}

// quit stops all timers, saves and exits.
func (m *Model) quit() (tea.Model, tea.Cmd) {
	if err := m.Shutdown(); err != nil {
		m.err = err
	}
	return m, tea.Quit
}

// toggleDone marks a pending task done or reopens a done one.
// A reopened task starts tracking again.
func (m *Model) toggleDone(task *domain.Task) {
	var err error
	if task.IsDone() {
		_, err = m.container.UndoTaskUseCase().Execute(m.ctx, usecase.UndoTaskInput{
			TaskID:     task.ID,
			StartTimer: true,
		})
	} else {
		_, err = m.container.MarkDoneUseCase().Execute(m.ctx, usecase.MarkDoneInput{TaskID: task.ID})
	}
	m.err = err
	m.refresh()
}

// deleteTask removes a task after confirmation.
func (m *Model) deleteTask(id int) {
	out, err := m.container.DeleteTaskUseCase().Execute(m.ctx, usecase.DeleteTaskInput{TaskID: id})
	switch {
	case err != nil:
		m.err = err
	case out.Task == nil:
		m.err = fmt.Errorf("task #%d not found", id)
	default:
		m.err = nil
	}
	m.refresh()
}

// toggleTimer pauses a running timer or resumes a stopped one.
func (m *Model) toggleTimer(task *domain.Task) {
	_, err := m.container.ToggleTimerUseCase().Execute(m.ctx, usecase.ToggleTimerInput{TaskID: task.ID})
	if errors.Is(err, domain.ErrTaskDone) {
		err = fmt.Errorf("task #%d is done; undo it to track time", task.ID)
	}
	m.err = err
}

// resetTimer restores the elapsed time to the baseline. The timer stays stopped.
func (m *Model) resetTimer(task *domain.Task) {
	_, err := m.container.ResetTimerUseCase().Execute(m.ctx, usecase.ResetTimerInput{TaskID: task.ID})
	m.err = err
}

// nextFilter returns the value after current in values, wrapping around.
func nextFilter[T comparable](values []T, current T) T {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
