package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/runoshun/todo/internal/domain"
)

func TestStatusIcon(t *testing.T) {
	assert.Equal(t, "○", StatusIcon(domain.StatusPending))
	assert.Equal(t, "✓", StatusIcon(domain.StatusDone))
	assert.Equal(t, "?", StatusIcon(domain.Status("archived")))
}

func TestPriorityLabel(t *testing.T) {
	tests := []struct {
		priority domain.Priority
		want     string
	}{
		{domain.PriorityHigh, "HIGH"},
		{domain.PriorityMedium, "MED"},
		{domain.PriorityLow, "LOW"},
		{domain.Priority("urgent"), "urgent"},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			assert.Equal(t, tt.want, PriorityLabel(tt.priority))
		})
	}
}

func TestStyles_PriorityBadge(t *testing.T) {
	s := DefaultStyles()

	high := testTask(1, "High")
	high.Priority = domain.PriorityHigh
	assert.Equal(t, s.PriorityHigh.GetBackground(), s.PriorityBadge(high).GetBackground())

	low := testTask(2, "Low")
	low.Priority = domain.PriorityLow
	assert.Equal(t, s.PriorityLow.GetBackground(), s.PriorityBadge(low).GetBackground())

	done := doneTask(3, "Done")
	done.Priority = domain.PriorityHigh
	assert.Equal(t, s.BadgeDone.GetBackground(), s.PriorityBadge(done).GetBackground())
}
