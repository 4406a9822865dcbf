package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/usecase"
)

// formValues holds the fields bound to the add/edit form.
type formValues struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
}

// newTaskForm builds the add/edit form bound to v.
func newTaskForm(v *formValues, width int) *huh.Form {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Validate(validateTitle).
				Value(&v.Title),
			huh.NewText().
				Title("Description").
				Lines(3).
				Value(&v.Description),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("High", string(domain.PriorityHigh)),
					huh.NewOption("Medium", string(domain.PriorityMedium)),
					huh.NewOption("Low", string(domain.PriorityLow)),
				).
				Value(&v.Priority),
			huh.NewInput().
				Title("Due date").
				Placeholder("YYYY-MM-DD").
				Value(&v.DueDate),
		),
	).WithShowHelp(true)
	if width > 0 {
		form = form.WithWidth(width)
	}
	// Keep the program running when the form finishes.
	form.SubmitCmd = nil
	form.CancelCmd = nil
	return form
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return domain.ErrEmptyTitle
	}
	return nil
}

// openNewForm shows an empty form with the configured default priority.
func (m *Model) openNewForm() tea.Cmd {
	priority := domain.DefaultPriority
	if m.container.AppConfig != nil && m.container.AppConfig.Tasks.DefaultPriority.IsValid() {
		priority = m.container.AppConfig.Tasks.DefaultPriority
	}
	m.formData = &formValues{Priority: string(priority)}
	m.editTaskID = 0
	return m.openForm()
}

// openEditForm shows the form filled with the task's fields.
func (m *Model) openEditForm(task *domain.Task) tea.Cmd {
	priority := task.Priority
	if !priority.IsValid() {
		priority = domain.DefaultPriority
	}
	m.formData = &formValues{
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(priority),
		DueDate:     task.DueDate,
	}
	m.editTaskID = task.ID
	return m.openForm()
}

func (m *Model) openForm() tea.Cmd {
	m.form = newTaskForm(m.formData, m.width-4)
	m.mode = ModeForm
	m.err = nil
	return m.form.Init()
}

// closeForm returns to the list without saving.
func (m *Model) closeForm() {
	m.form = nil
	m.formData = nil
	m.editTaskID = 0
	m.mode = ModeNormal
}

// handleFormMsg forwards msg to the form and saves once it completes.
func (m *Model) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.closeForm()
		return m, nil
	}

	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.submitForm()
		return m, nil
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	case huh.StateNormal:
	}
	return m, cmd
}

// submitForm creates or updates the task from the form values.
func (m *Model) submitForm() {
	v := m.formData
	editID := m.editTaskID
	m.closeForm()
	if v == nil {
		return
	}

	priority, err := domain.ParsePriority(v.Priority)
	if err != nil {
		m.err = err
		return
	}

	if editID == 0 {
		out, err := m.container.AddTaskUseCase().Execute(m.ctx, usecase.AddTaskInput{
			Title:       v.Title,
			Description: v.Description,
			Priority:    priority,
			DueDate:     v.DueDate,
			StartTimer:  true,
		})
		if err != nil {
			m.err = err
			return
		}
		m.refresh()
		m.selectTask(out.Task.ID)
		return
	}

	_, err = m.container.EditTaskUseCase().Execute(m.ctx, usecase.EditTaskInput{
		TaskID: editID,
		Fields: domain.TaskFields{
			Title:       &v.Title,
			Description: &v.Description,
			Priority:    &priority,
			DueDate:     &v.DueDate,
		},
	})
	if err != nil {
		m.err = err
		return
	}
	m.refresh()
}

// selectTask moves the cursor to id if it is visible.
func (m *Model) selectTask(id int) {
	for i, task := range m.tasks {
		if task.ID == id {
			m.taskList.Select(i)
			return
		}
	}
}
