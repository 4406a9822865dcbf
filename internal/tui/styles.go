package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/runoshun/todo/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Title/text colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color

	// Priority colors
	High   lipgloss.Color
	Medium lipgloss.Color
	Low    lipgloss.Color

	// Status colors
	Pending lipgloss.Color
	Done    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)
	DescNormal:    lipgloss.Color("#636E72"), // Gray
	DescSelected:  lipgloss.Color("#B2BEC3"), // Light gray

	High:   lipgloss.Color("#D63031"), // Red
	Medium: lipgloss.Color("#0984E3"), // Blue
	Low:    lipgloss.Color("#00B894"), // Green

	Pending: lipgloss.Color("#74B9FF"), // Light blue
	Done:    lipgloss.Color("#2D3436"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderText lipgloss.Style
	FilterTag  lipgloss.Style

	// Task list
	TaskID             lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleDone      lipgloss.Style
	TaskDesc           lipgloss.Style
	TaskDue            lipgloss.Style
	Elapsed            lipgloss.Style
	ElapsedRunning     lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Badges
	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
	BadgeDone      lipgloss.Style
	StatusPending  lipgloss.Style
	StatusDone     lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style

	// Detail view
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style
	DetailDesc  lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	badge := lipgloss.NewStyle().
		Padding(0, 1).
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF"))

	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		FilterTag: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleDone: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		TaskDesc: lipgloss.NewStyle().
			Foreground(Colors.DescNormal),

		TaskDue: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		Elapsed: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ElapsedRunning: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		PriorityHigh:   badge.Background(Colors.High),
		PriorityMedium: badge.Background(Colors.Medium),
		PriorityLow:    badge.Background(Colors.Low),
		BadgeDone:      badge.Background(Colors.Done).Foreground(Colors.Muted),

		StatusPending: lipgloss.NewStyle().
			Foreground(Colors.Pending),

		StatusDone: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		HelpKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		HelpDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle(),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		DetailTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		DetailLabel: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Width(12),

		DetailValue: lipgloss.NewStyle(),

		DetailDesc: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			MarginTop(1),
	}
}

// PriorityBadge returns the badge style for a task.
// Done tasks share one dark badge regardless of priority.
func (s Styles) PriorityBadge(task *domain.Task) lipgloss.Style {
	if task.IsDone() {
		return s.BadgeDone
	}
	switch task.Priority {
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityMedium:
		return s.PriorityMedium
	default:
		return s.PriorityLow
	}
}

// StatusStyle returns the style for a given status.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	if status == domain.StatusDone {
		return s.StatusDone
	}
	return s.StatusPending
}

// StatusIcon returns an icon for a given status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusDone:
		return "✓"
	default:
		return "?"
	}
}

// PriorityLabel returns the short badge text for a priority.
func PriorityLabel(p domain.Priority) string {
	switch p {
	case domain.PriorityHigh:
		return "HIGH"
	case domain.PriorityMedium:
		return "MED"
	case domain.PriorityLow:
		return "LOW"
	default:
		return string(p)
	}
}
