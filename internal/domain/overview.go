package domain

import "fmt"

// Overview holds task counts shown in the summary line.
type Overview struct {
	Total        int
	Pending      int
	Done         int
	HighPriority int // Pending tasks with high priority
}

// NewOverview computes an Overview from a list of tasks.
func NewOverview(tasks []*Task) Overview {
	var o Overview
	for _, t := range tasks {
		o.Total++
		if t.IsDone() {
			o.Done++
			continue
		}
		o.Pending++
		if t.Priority == PriorityHigh {
			o.HighPriority++
		}
	}
	return o
}

// String returns the one-line summary.
func (o Overview) String() string {
	return fmt.Sprintf("Total: %d   Pending: %d   Done: %d   High priority: %d",
		o.Total, o.Pending, o.Done, o.HighPriority)
}
