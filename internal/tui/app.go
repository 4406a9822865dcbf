package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
//
// Every task mutation, including timer ticks, happens inside Update or
// Init, which bubbletea runs on a single goroutine. Timer actions reach
// Update as MsgTimerFired and are executed there.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	ctx       context.Context
	cancel    context.CancelFunc
	err       error
	form      *huh.Form
	formData  *formValues

	// State (slices - contain pointers)
	tasks []*domain.Task

	// Components (structs with pointers)
	keys        KeyMap
	styles      Styles
	help        help.Model
	taskList    list.Model
	searchInput textinput.Model
	query       domain.TaskQuery
	overview    domain.Overview

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	width         int
	height        int
	confirmTaskID int
	editTaskID    int // 0 when the form creates a new task
	closed        bool
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	si := textinput.New()
	si.Placeholder = "Search title or description..."
	si.CharLimit = 100

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles, c.Tracker.Running)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	order := domain.DefaultSortOrder
	if c.AppConfig != nil && c.AppConfig.TUI.Sort != "" {
		order = c.AppConfig.TUI.Sort
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Model{
		container:   c,
		ctx:         ctx,
		cancel:      cancel,
		mode:        ModeNormal,
		keys:        DefaultKeyMap(),
		styles:      styles,
		help:        help.New(),
		taskList:    taskList,
		searchInput: si,
		query: domain.TaskQuery{
			Status:   domain.StatusFilterAll,
			Priority: domain.PriorityFilterAll,
			Order:    order,
		},
	}
	m.refresh()
	return m
}

// Init starts a timer for every pending task and begins waiting for timer actions.
func (m *Model) Init() tea.Cmd {
	m.container.Tracker.TrackPending()
	return m.waitForTimer()
}

// waitForTimer returns a command that blocks until the next timer action fires.
func (m *Model) waitForTimer() tea.Cmd {
	loop := m.container.Loop
	if loop == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		run, ok := loop.Next(ctx)
		if !ok {
			return MsgTimersClosed{}
		}
		return MsgTimerFired{Run: run}
	}
}

// Shutdown stops every timer and saves the task list once.
// Calling it again does nothing.
func (m *Model) Shutdown() error {
	if m.closed {
		return nil
	}
	m.closed = true
	m.cancel()
	_, err := m.container.ShutdownUseCase().Execute(context.Background(), usecase.ShutdownInput{})
	return err
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	if m.taskList.SelectedItem() == nil {
		return nil
	}
	if ti, ok := m.taskList.SelectedItem().(taskItem); ok {
		return ti.task
	}
	return nil
}

// refresh re-runs the query and rebuilds the list, keeping the selection
// on the same task when it is still visible.
func (m *Model) refresh() {
	selectedID := 0
	if task := m.SelectedTask(); task != nil {
		selectedID = task.ID
	}

	out, err := m.container.ListTasksUseCase().Execute(m.ctx, usecase.ListTasksInput{Query: m.query})
	if err != nil {
		m.err = err
		return
	}
	m.tasks = out.Tasks
	m.overview = out.Overview

	items := make([]list.Item, len(m.tasks))
	selectedIndex := 0
	for i, task := range m.tasks {
		items[i] = taskItem{task: task}
		if task.ID == selectedID {
			selectedIndex = i
		}
	}
	m.taskList.SetItems(items)
	if len(items) > 0 {
		m.taskList.Select(selectedIndex)
	}
}

// updateLayoutSizes sizes the list to the window.
func (m *Model) updateLayoutSizes() {
	// App padding (2 each side), header (2 lines), footer (2 lines), search line.
	listHeight := m.height - 9
	if listHeight < 3 {
		listHeight = 3
	}
	m.taskList.SetSize(m.width-4, listHeight)
	m.help.Width = m.width
}
