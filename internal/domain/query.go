package domain

import (
	"slices"
	"strings"
)

// StatusFilter selects tasks by status.
type StatusFilter string

const (
	StatusFilterAll     StatusFilter = "all"
	StatusFilterPending StatusFilter = "pending"
	StatusFilterDone    StatusFilter = "done"
)

// PriorityFilter selects tasks by priority.
type PriorityFilter string

const (
	PriorityFilterAll    PriorityFilter = "all"
	PriorityFilterLow    PriorityFilter = "low"
	PriorityFilterMedium PriorityFilter = "medium"
	PriorityFilterHigh   PriorityFilter = "high"
)

// SortOrder orders tasks by creation time.
type SortOrder string

const (
	SortNewest SortOrder = "newest" // created_at descending
	SortOldest SortOrder = "oldest" // created_at ascending
)

// StatusFilters lists the status filters in cycling order.
var StatusFilters = []StatusFilter{StatusFilterAll, StatusFilterPending, StatusFilterDone}

// PriorityFilters lists the priority filters in cycling order.
var PriorityFilters = []PriorityFilter{PriorityFilterAll, PriorityFilterHigh, PriorityFilterMedium, PriorityFilterLow}

// ParseStatusFilter parses a status filter; empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return StatusFilterAll, nil
	case StatusFilterAll, StatusFilterPending, StatusFilterDone:
		return f, nil
	default:
		return "", ErrInvalidStatusFilter
	}
}

// ParsePriorityFilter parses a priority filter; empty means all.
func ParsePriorityFilter(s string) (PriorityFilter, error) {
	switch f := PriorityFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return PriorityFilterAll, nil
	case PriorityFilterAll, PriorityFilterLow, PriorityFilterMedium, PriorityFilterHigh:
		return f, nil
	default:
		return "", ErrInvalidPriorityFilter
	}
}

// ParseSortOrder parses a sort order; empty means newest first.
func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(s))); o {
	case "":
		return SortNewest, nil
	case SortNewest, SortOldest:
		return o, nil
	default:
		return "", ErrInvalidSortOrder
	}
}

// Toggle returns the opposite sort order.
func (o SortOrder) Toggle() SortOrder {
	if o == SortOldest {
		return SortNewest
	}
	return SortOldest
}

// TaskQuery specifies a projection over the task list.
// The zero value matches every task, newest first.
type TaskQuery struct {
	Status   StatusFilter
	Priority PriorityFilter
	Search   string
	Order    SortOrder
}

// Matches returns true if the task passes the status, priority and search filters.
func (q TaskQuery) Matches(t *Task) bool {
	switch q.Status {
	case "", StatusFilterAll:
	default:
		if t.Status != Status(q.Status) {
			return false
		}
	}

	switch q.Priority {
	case "", PriorityFilterAll:
	default:
		if t.Priority != Priority(q.Priority) {
			return false
		}
	}

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle)
}

// Apply filters and sorts tasks without modifying the input slice.
// Sorting is stable so tasks created at the same instant keep their input order.
func (q TaskQuery) Apply(tasks []*Task) []*Task {
	result := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if q.Matches(t) {
			result = append(result, t)
		}
	}

	slices.SortStableFunc(result, func(a, b *Task) int {
		if q.Order == SortOldest {
			return a.CreatedAt.Compare(b.CreatedAt)
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return result
}
